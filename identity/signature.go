// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"math/big"

	"github.com/bitmark-inc/objectchaind/fault"
)

// size of one coordinate of a P-256 signature in r||s form
const scalarSize = 32

// Sign - sign a message returning the base64 of the DER signature
func Sign(privateKey *ecdsa.PrivateKey, message string) (string, error) {
	if nil == privateKey {
		return "", fault.InvalidPrivateKey
	}
	digest := sha256.Sum256([]byte(message))
	signature, err := ecdsa.SignASN1(rand.Reader, privateKey, digest[:])
	if nil != err {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify - check a base64 signature, any malformed input is just false
func Verify(publicKey *ecdsa.PublicKey, message string, signatureBase64 string) bool {
	if nil == publicKey || "" == signatureBase64 {
		return false
	}

	signature, err := base64.StdEncoding.DecodeString(signatureBase64)
	if nil != err || 0 == len(signature) {
		return false
	}

	digest := sha256.Sum256([]byte(message))

	if 2*scalarSize == len(signature) {
		r := new(big.Int).SetBytes(signature[:scalarSize])
		s := new(big.Int).SetBytes(signature[scalarSize:])
		if ecdsa.Verify(publicKey, digest[:], r, s) {
			return true
		}
	}
	return ecdsa.VerifyASN1(publicKey, digest[:], signature)
}

// VerifyPEM - verify with a PEM encoded public key
func VerifyPEM(publicPEM string, message string, signatureBase64 string) bool {
	publicKey, err := ParsePublicKey(publicPEM)
	if nil != err {
		return false
	}
	return Verify(publicKey, message, signatureBase64)
}
