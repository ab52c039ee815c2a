// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"strings"

	"github.com/bitmark-inc/objectchaind/fault"
)

// number of hash bytes kept in an address
const addressLength = 20

// PEM block types
const (
	publicKeyType    = "PUBLIC KEY"
	privateKeyType   = "PRIVATE KEY"
	ecPrivateKeyType = "EC PRIVATE KEY"
)

// KeyPair - a generated key with both halves in PEM form
type KeyPair struct {
	PrivateKey    *ecdsa.PrivateKey
	PrivateKeyPEM string
	PublicKeyPEM  string
	Address       string
}

// NewKeyPair - generate a new P-256 key pair
func NewKeyPair() (*KeyPair, error) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if nil != err {
		return nil, err
	}
	return keyPairFrom(privateKey)
}

// KeyPairFromPEM - rebuild the key pair from a private key in PEM form
func KeyPairFromPEM(privatePEM string) (*KeyPair, error) {
	privateKey, err := ParsePrivateKey(privatePEM)
	if nil != err {
		return nil, err
	}
	return keyPairFrom(privateKey)
}

func keyPairFrom(privateKey *ecdsa.PrivateKey) (*KeyPair, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if nil != err {
		return nil, err
	}
	publicPEM, err := PublicKeyToPEM(&privateKey.PublicKey)
	if nil != err {
		return nil, err
	}
	address, err := DeriveAddress(&privateKey.PublicKey)
	if nil != err {
		return nil, err
	}

	return &KeyPair{
		PrivateKey:    privateKey,
		PrivateKeyPEM: string(pem.EncodeToMemory(&pem.Block{Type: privateKeyType, Bytes: der})),
		PublicKeyPEM:  publicPEM,
		Address:       address,
	}, nil
}

// PublicKeyToPEM - SubjectPublicKeyInfo in PEM form
func PublicKeyToPEM(publicKey *ecdsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if nil != err {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: publicKeyType, Bytes: der})), nil
}

// ParsePublicKey - decode a PEM SubjectPublicKeyInfo holding a P-256 key
func ParsePublicKey(publicPEM string) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(publicPEM)))
	if nil == block || publicKeyType != block.Type {
		return nil, fault.InvalidPublicKey
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}

	publicKey, ok := key.(*ecdsa.PublicKey)
	if !ok || elliptic.P256() != publicKey.Curve {
		return nil, fault.InvalidPublicKey
	}
	return publicKey, nil
}

// ParsePrivateKey - decode a PKCS#8 or SEC 1 PEM private key
func ParsePrivateKey(privatePEM string) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(privatePEM)))
	if nil == block {
		return nil, fault.InvalidPrivateKey
	}

	var privateKey *ecdsa.PrivateKey
	switch block.Type {
	case privateKeyType:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if nil != err {
			return nil, fault.InvalidPrivateKey
		}
		k, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fault.InvalidPrivateKey
		}
		privateKey = k

	case ecPrivateKeyType:
		k, err := x509.ParseECPrivateKey(block.Bytes)
		if nil != err {
			return nil, fault.InvalidPrivateKey
		}
		privateKey = k

	default:
		return nil, fault.InvalidPrivateKey
	}

	if elliptic.P256() != privateKey.Curve {
		return nil, fault.InvalidPrivateKey
	}
	return privateKey, nil
}

// DeriveAddress - account identifier for a public key
func DeriveAddress(publicKey *ecdsa.PublicKey) (string, error) {
	if nil == publicKey {
		return "", fault.InvalidPublicKey
	}
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if nil != err {
		return "", fault.InvalidPublicKey
	}
	digest := sha256.Sum256(der)
	return hex.EncodeToString(digest[:addressLength]), nil
}

// AddressFromPEM - parse a public key and derive its address
func AddressFromPEM(publicPEM string) (string, error) {
	publicKey, err := ParsePublicKey(publicPEM)
	if nil != err {
		return "", err
	}
	return DeriveAddress(publicKey)
}

// ValidAddress - true for 40 lower case hex characters
func ValidAddress(address string) bool {
	if 2*addressLength != len(address) {
		return false
	}
	for _, c := range address {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
