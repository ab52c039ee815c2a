// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// Wallet - a known address
//
// the private key is never stored
type Wallet struct {
	Address      string `json:"address"`
	PublicKeyPem string `json:"publicKeyPem,omitempty"`
	Label        string `json:"label,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

// StoredContent - index entry for a content addressed blob
type StoredContent struct {
	Cid       string `json:"cid"`
	Location  string `json:"location"`
	FileName  string `json:"fileName"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
