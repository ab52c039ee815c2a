// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/google/uuid"
)

// Transaction - a settled or pending ledger operation
//
// the object fields are only set for UpdateObject
type Transaction struct {
	Id                string `json:"id"`
	Type              TxType `json:"type"`
	TokenId           string `json:"tokenId"`
	FromAddress       string `json:"fromAddress"`
	ToAddress         string `json:"toAddress"`
	Quantity          int64  `json:"quantity"`
	PublicKeyPem      string `json:"publicKeyPem,omitempty"`
	SignatureBase64   string `json:"signatureBase64,omitempty"`
	CreatedAt         int64  `json:"createdAt"` // unix milliseconds
	NewObjectCid      string `json:"newObjectCid,omitempty"`
	PreviousObjectCid string `json:"previousObjectCid,omitempty"`
	NewVersionNumber  int64  `json:"newVersionNumber,omitempty"`
	JsonSha256        string `json:"jsonSha256,omitempty"`
	TsMs              int64  `json:"tsMs,omitempty"` // client timestamp covered by the signature
}

// NewId - 32 lower case hex characters
func NewId() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Involves - true if the address is the sender or the receiver
func (tx *Transaction) Involves(address string) bool {
	return address == tx.FromAddress || address == tx.ToAddress
}
