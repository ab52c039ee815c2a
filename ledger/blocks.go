// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

// maximum blocks returned by LatestBlocks
const MaximumLatestBlocks = 100

// AppendBlock - store the next block of the chain
//
// the index must be one past the current height and the previous hash
// must link to the current last block
func (l *Ledger) AppendBlock(block *record.Block) error {
	buffer, err := json.Marshal(block)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	last, found, err := l.LastBlock()
	if nil != err {
		trx.Abort()
		return err
	}

	expectedIndex := uint64(1)
	expectedPrevious := ""
	if found {
		expectedIndex = last.Index + 1
		expectedPrevious = last.Hash
	}

	if block.Index < expectedIndex {
		trx.Abort()
		return fault.BlockIndexExists
	}
	if block.Index != expectedIndex || block.PreviousHash != expectedPrevious {
		trx.Abort()
		return fault.ChainBroken
	}

	trx.Put(storage.Pool.Blocks, uint64Key(block.Index), buffer)
	return trx.Commit()
}

func decodeBlock(buffer []byte) (*record.Block, error) {
	block := &record.Block{}
	err := json.Unmarshal(buffer, block)
	if nil != err {
		return nil, err
	}
	return block, nil
}

// Block - fetch a block by index
func (l *Ledger) Block(index uint64) (*record.Block, error) {
	buffer, err := storage.Pool.Blocks.Get(uint64Key(index))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.BlockNotFound
	}
	return decodeBlock(buffer)
}

// LastBlock - the highest block, false if the chain is empty
func (l *Ledger) LastBlock() (*record.Block, bool, error) {
	element, found, err := storage.Pool.Blocks.LastElement()
	if nil != err || !found {
		return nil, false, err
	}
	block, err := decodeBlock(element.Value)
	if nil != err {
		return nil, false, err
	}
	return block, true, nil
}

// Height - index of the last block, zero for an empty chain
func (l *Ledger) Height() (uint64, error) {
	element, found, err := storage.Pool.Blocks.LastElement()
	if nil != err || !found {
		return 0, err
	}
	if 8 != len(element.Key) {
		return 0, fault.RecordTruncated
	}
	return binary.BigEndian.Uint64(element.Key), nil
}

// LatestBlocks - newest blocks first
func (l *Ledger) LatestBlocks(count int) ([]record.Block, error) {
	if count <= 0 || count > MaximumLatestBlocks {
		count = MaximumLatestBlocks
	}

	blocks := make([]record.Block, 0, count)
	cursor := storage.Pool.Blocks.NewFetchCursor()
	err := cursor.MapReverse(func(key []byte, value []byte) error {
		block, err := decodeBlock(value)
		if nil != err {
			return err
		}
		blocks = append(blocks, *block)
		if len(blocks) >= count {
			return storage.ErrStopMap
		}
		return nil
	})
	return blocks, err
}
