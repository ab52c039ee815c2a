// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/objectchaind/record"
)

type blockReader interface {
	Block(index uint64) (*record.Block, error)
}

type transactionItem struct {
	Index int                `json:"index"`
	TxId  string             `json:"txId"`
	Type  string             `json:"type"`
	Data  record.Transaction `json:"data"`
}

type blockResult struct {
	Header       record.Summary    `json:"header"`
	Signer       string            `json:"signer,omitempty"`
	Transactions []transactionItem `json:"transactions"`
}

// dump of a particular block
func dumpBlock(store blockReader, number uint64) (*blockResult, error) {

	block, err := store.Block(number)
	if nil != err {
		return nil, err
	}

	txs, err := block.Transactions()
	if nil != err {
		return nil, err
	}

	result := &blockResult{
		Header:       block.Summarise(),
		Signer:       block.ProducerPublicKeyPem,
		Transactions: make([]transactionItem, len(txs)),
	}
	for i, tx := range txs {
		result.Transactions[i] = transactionItem{
			Index: i,
			TxId:  tx.Id,
			Type:  tx.Type.String(),
			Data:  tx,
		}
	}
	return result, nil
}

// write a JSON array of blocks start..end inclusive
func dumpBlocks(w io.Writer, store blockReader, start uint64, end uint64) error {
	fmt.Fprintf(w, "[\n")
	for n := start; n <= end; n += 1 {
		block, err := dumpBlock(store, n)
		if nil != err {
			return err
		}
		s, err := json.MarshalIndent(block, "  ", "  ")
		if nil != err {
			return err
		}
		separator := ","
		if n == end {
			separator = ""
		}
		fmt.Fprintf(w, "  %s%s\n", s, separator)
	}
	fmt.Fprintf(w, "]\n")
	return nil
}
