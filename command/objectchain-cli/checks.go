// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/bitmark-inc/objectchaind/command/objectchain-cli/configuration"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
)

// errors local to the command line client
var (
	ErrIncompatibleOptions = fault.InvalidError("incompatible options")
	ErrInvalidPasswordLen  = fault.InvalidError("password must be at least 8 characters")
	ErrPasswordMismatch    = fault.InvalidError("passwords do not match")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredObject      = fault.InvalidError("one of object or object-file is required")
	ErrRequiredTokenId     = fault.InvalidError("token id is required")
	ErrRequiredTxId        = fault.InvalidError("transaction id is required")
	ErrRequiredCid         = fault.InvalidError("cid is required")
	ErrRequiredFile        = fault.InvalidError("file is required")
	ErrRequiredName        = fault.InvalidError("name is required")
)

// check if file exists, return true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

func checkTokenId(tokenId string) (string, error) {
	tokenId = strings.TrimSpace(tokenId)
	if "" == tokenId {
		return "", ErrRequiredTokenId
	}
	return tokenId, nil
}

func checkTxId(txId string) (string, error) {
	txId = strings.TrimSpace(txId)
	if "" == txId {
		return "", ErrRequiredTxId
	}
	return txId, nil
}

func checkQuantity(quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, fault.InvalidQuantity
	}
	return quantity, nil
}

// identity name from the option or the configured default
func checkIdentityName(name string, config *configuration.Configuration) (string, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// an identity name in the configuration or a plain address
func checkAddress(nameOrAddress string, config *configuration.Configuration) (string, error) {
	if "" == nameOrAddress {
		return "", fault.MissingParameters
	}
	if nil != config {
		if id, err := config.Identity(nameOrAddress); nil == err {
			return id.Address, nil
		}
	}
	if !identity.ValidAddress(nameOrAddress) {
		return "", fault.InvalidAddress
	}
	return nameOrAddress, nil
}

// address option falling back to the default identity
func checkAddressOrDefault(nameOrAddress string, config *configuration.Configuration) (string, error) {
	if "" == nameOrAddress {
		name, err := checkIdentityName("", config)
		if nil != err {
			return "", err
		}
		nameOrAddress = name
	}
	return checkAddress(nameOrAddress, config)
}

// object JSON given inline or in a file, exactly one is allowed
func checkObject(object string, objectFile string) (string, error) {
	switch {
	case "" != object && "" != objectFile:
		return "", ErrIncompatibleOptions
	case "" != object:
		return object, nil
	case "" != objectFile:
		data, err := ioutil.ReadFile(objectFile)
		if nil != err {
			return "", err
		}
		return string(data), nil
	default:
		return "", ErrRequiredObject
	}
}

// optional private key PEM file
func checkOptionalKeyFile(fileName string) (string, error) {
	if "" == fileName {
		return "", nil
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", err
	}
	if _, err := identity.ParsePrivateKey(string(data)); nil != err {
		return "", err
	}
	return string(data), nil
}

// public key PEM file
func checkPublicKeyFile(fileName string) (string, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", err
	}
	if _, err := identity.ParsePublicKey(string(data)); nil != err {
		return "", err
	}
	return string(data), nil
}
