// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - ECDSA P-256 keys, signatures and addresses
//
// An address is the lower case hex of the first 20 bytes of the
// SHA-256 of the DER encoded SubjectPublicKeyInfo of a key.
//
// Signatures are ECDSA over SHA-256 of the UTF-8 message, ASN.1 DER
// encoded then base64 wrapped.  Verification also accepts the fixed
// 64 byte r||s encoding produced by some platforms.
//
// The signed messages are newline separated strings whose exact byte
// layout is part of the wire contract with clients.
package identity
