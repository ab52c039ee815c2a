// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
)

//go:generate mockgen -source=authority.go -destination=mocks/authority.go -package=mocks

// Signer - signs sealed block hashes
//
// ok is false when no authority key is configured, blocks are then
// appended unsigned
type Signer interface {
	Sign(message string) (publicKeyPEM string, signature string, ok bool, err error)
}

// Authority - the block signing key, optionally loaded from a file
type Authority struct {
	sync.RWMutex

	log      *logger.L
	filePath string
	key      *identity.KeyPair
	watcher  *fsnotify.Watcher
}

// New - load the key file, an empty file name gives an unsigned authority
func New(log *logger.L, keyFile string) (*Authority, error) {
	a := &Authority{
		log: log,
	}
	if "" == keyFile {
		log.Warn("no authority key: blocks will not be signed")
		return a, nil
	}

	filePath, err := filepath.Abs(filepath.Clean(keyFile))
	if nil != err {
		return nil, err
	}
	a.filePath = filePath

	err = a.Reload()
	if nil != err {
		return nil, err
	}
	return a, nil
}

// FromKeyPair - authority holding an in-memory key
func FromKeyPair(log *logger.L, key *identity.KeyPair) *Authority {
	return &Authority{
		log: log,
		key: key,
	}
}

// Reload - read the key file again, the previous key is kept on error
func (a *Authority) Reload() error {
	if "" == a.filePath {
		return fault.KeyFileNotFound
	}

	data, err := ioutil.ReadFile(a.filePath)
	if nil != err {
		if os.IsNotExist(err) {
			return fault.KeyFileNotFound
		}
		return err
	}
	key, err := identity.KeyPairFromPEM(string(data))
	if nil != err {
		a.log.Errorf("key file: %q  error: %s", a.filePath, err)
		return err
	}

	a.Lock()
	a.key = key
	a.Unlock()

	a.log.Infof("authority address: %s", key.Address)
	return nil
}

// Address - the authority address or empty if unsigned
func (a *Authority) Address() string {
	a.RLock()
	defer a.RUnlock()
	if nil == a.key {
		return ""
	}
	return a.key.Address
}

// PublicKeyPEM - the authority public key or empty if unsigned
func (a *Authority) PublicKeyPEM() string {
	a.RLock()
	defer a.RUnlock()
	if nil == a.key {
		return ""
	}
	return a.key.PublicKeyPEM
}

// Sign - sign a message with the current key
func (a *Authority) Sign(message string) (string, string, bool, error) {
	a.RLock()
	key := a.key
	a.RUnlock()

	if nil == key {
		return "", "", false, nil
	}
	signature, err := identity.Sign(key.PrivateKey, message)
	if nil != err {
		return "", "", false, err
	}
	return key.PublicKeyPEM, signature, true, nil
}

// GenerateKeyFile - create a new authority key file
func GenerateKeyFile(keyFile string) (*identity.KeyPair, error) {
	if _, err := os.Stat(keyFile); nil == err {
		return nil, fault.KeyFileAlreadyExists
	}
	key, err := identity.NewKeyPair()
	if nil != err {
		return nil, err
	}
	err = ioutil.WriteFile(keyFile, []byte(key.PrivateKeyPEM), 0600)
	if nil != err {
		return nil, err
	}
	return key, nil
}
