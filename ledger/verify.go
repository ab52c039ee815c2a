// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/merkle"
	"github.com/bitmark-inc/objectchaind/storage"
)

// ChainReport - outcome of a full chain scan
type ChainReport struct {
	Blocks   uint64 `json:"blocks"`
	Valid    bool   `json:"valid"`
	BrokenAt uint64 `json:"brokenAt,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// VerifyChain - recompute every block hash, merkle root, signature
// and previous hash link, then check every settled transaction was
// sealed into some block
//
// a broken chain is reported, only storage problems return an error
func (l *Ledger) VerifyChain() (*ChainReport, error) {
	report := &ChainReport{Valid: true}

	previousHash := ""
	expectedIndex := uint64(1)
	sealed := uint64(0)

	cursor := storage.Pool.Blocks.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		block, err := decodeBlock(value)
		if nil != err {
			return err
		}

		reason := ""
		switch {
		case block.Index != expectedIndex:
			reason = fmt.Sprintf("index: %d  expected: %d", block.Index, expectedIndex)
		case block.PreviousHash != previousHash:
			reason = "previous hash does not link"
		case block.ComputeHash() != block.Hash:
			reason = "hash mismatch"
		}

		if "" == reason {
			txs, err := block.Transactions()
			if nil != err {
				reason = "transactions: " + err.Error()
			} else if len(txs) != block.TxCount {
				reason = fmt.Sprintf("tx count: %d  expected: %d", len(txs), block.TxCount)
			} else {
				ids := make([]string, len(txs))
				for i, tx := range txs {
					ids[i] = tx.Id
				}
				if merkle.Root(ids) != block.MerkleRoot {
					reason = "merkle root mismatch"
				}
			}
		}

		if "" == reason && "" != block.ProducerSignatureBase64 {
			if !identity.VerifyPEM(block.ProducerPublicKeyPem, block.Hash, block.ProducerSignatureBase64) {
				reason = "producer signature invalid"
			}
		}

		report.Blocks += 1
		if "" != reason {
			report.Valid = false
			report.BrokenAt = block.Index
			report.Reason = reason
			return storage.ErrStopMap
		}

		previousHash = block.Hash
		expectedIndex += 1
		sealed += uint64(block.TxCount)
		return nil
	})
	if nil != err {
		return nil, err
	}
	if !report.Valid {
		return report, nil
	}

	// a failed append after settlement leaves transactions unsealed
	settled, err := l.TransactionCount()
	if nil != err {
		return nil, err
	}
	if settled != sealed {
		report.Valid = false
		report.BrokenAt = expectedIndex
		report.Reason = fmt.Sprintf("settled transactions: %d  sealed: %d", settled, sealed)
	}
	return report, nil
}
