// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/objectchaind/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Prefix - restrict the cursor to keys that begin with a given prefix
func (cursor *FetchCursor) Prefix(keyPrefix []byte) *FetchCursor {
	r := util.BytesPrefix(cursor.pool.prefixKey(keyPrefix))
	cursor.maxRange = *r
	return cursor
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.DatabaseIsNotSet
	}

	iter := poolData.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// advance the start to the immediate successor of the last key
	if n > 0 {
		start := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(start, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range, in key order
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	return cursor.iterate(false, f)
}

// MapReverse - run a function on all elements in the range, last key first
func (cursor *FetchCursor) MapReverse(f func(key []byte, value []byte) error) error {
	return cursor.iterate(true, f)
}

// ErrStopMap - returned by a map function to end the scan without error
const ErrStopMap = fault.ProcessError("stop map")

func (cursor *FetchCursor) iterate(reverse bool, f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}

	iter := poolData.database.NewIterator(&cursor.maxRange, nil)

	var err error
	next := iter.Next
	if reverse {
		next = reverseStepper(iter)
	}

iterating:
	for next() {
		e := copyElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if ErrStopMap == err {
		err = nil
	}
	if nil == err {
		err = iter.Error()
	}
	return err
}

// first call positions on the last element then steps backwards
func reverseStepper(iter iterator.Iterator) func() bool {
	started := false
	return func() bool {
		if !started {
			started = true
			return iter.Last()
		}
		return iter.Prev()
	}
}
