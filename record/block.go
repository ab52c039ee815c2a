// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bitmark-inc/objectchaind/canonical"
)

// Block - a sealed settlement round
type Block struct {
	Index                   uint64 `json:"index"`
	Timestamp               int64  `json:"timestamp"` // unix milliseconds
	PreviousHash            string `json:"previousHash"`
	Hash                    string `json:"hash"`
	MerkleRoot              string `json:"merkleRoot"`
	ProducerPublicKeyPem    string `json:"producerPublicKeyPem"`
	ProducerSignatureBase64 string `json:"producerSignatureBase64"`
	TxCount                 int    `json:"txCount"`
	TransactionsJson        string `json:"transactionsJson"`
}

// BlockPayload - the string whose SHA-256 is the block hash
//
//   {index}|{previousHash}|{merkleRoot}|{transactionsJson}
func BlockPayload(index uint64, previousHash string, merkleRoot string, transactionsJson string) string {
	b := strings.Builder{}
	b.WriteString(strconv.FormatUint(index, 10))
	b.WriteByte('|')
	b.WriteString(previousHash)
	b.WriteByte('|')
	b.WriteString(merkleRoot)
	b.WriteByte('|')
	b.WriteString(transactionsJson)
	return b.String()
}

// ComputeHash - recompute the hash from the stored fields
func (b *Block) ComputeHash() string {
	return canonical.Sha256Hex(BlockPayload(b.Index, b.PreviousHash, b.MerkleRoot, b.TransactionsJson))
}

// Transactions - decode the settled transactions carried by the block
func (b *Block) Transactions() ([]Transaction, error) {
	txs := []Transaction{}
	if "" == b.TransactionsJson {
		return txs, nil
	}
	err := json.Unmarshal([]byte(b.TransactionsJson), &txs)
	return txs, err
}

// Summary - the block without its transaction payload
type Summary struct {
	Index        uint64 `json:"index"`
	Timestamp    int64  `json:"timestamp"`
	PreviousHash string `json:"previousHash"`
	Hash         string `json:"hash"`
	MerkleRoot   string `json:"merkleRoot"`
	TxCount      int    `json:"txCount"`
	Signed       bool   `json:"signed"`
}

// Summarise - short form for listings
func (b *Block) Summarise() Summary {
	return Summary{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		PreviousHash: b.PreviousHash,
		Hash:         b.Hash,
		MerkleRoot:   b.MerkleRoot,
		TxCount:      b.TxCount,
		Signed:       "" != b.ProducerSignatureBase64,
	}
}
