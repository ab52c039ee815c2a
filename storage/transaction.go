// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/objectchaind/fault"
)

// Transaction - a set of writes across pools that commit atomically
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	Commit() error
	Abort()
}

// only one writer may hold a transaction at a time
var writerLock sync.Mutex

type transaction struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache writeCache
}

// NewDBTransaction - start a write transaction
//
// blocks until any other transaction is committed or aborted
func NewDBTransaction() (Transaction, error) {
	writerLock.Lock()

	poolData.RLock()
	db := poolData.database
	poolData.RUnlock()

	if nil == db {
		writerLock.Unlock()
		return nil, fault.DatabaseIsNotSet
	}

	return &transaction{
		inUse: true,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}, nil
}

// Put - stage a key/value write
func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	prefixedKey := handle.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.batch.Put(prefixedKey, stored)
	t.cache.Set(dbPut, string(prefixedKey), stored)
}

// PutN - stage a big endian uint64 write
func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

// Delete - stage removal of a key
func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	prefixedKey := handle.prefixKey(key)
	t.batch.Delete(prefixedKey)
	t.cache.Set(dbDelete, string(prefixedKey), nil)
}

// Get - read a value, preferring uncommitted writes
func (t *transaction) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	t.Lock()
	value, found, deleted := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if deleted {
		return nil, nil
	}
	if found {
		return value, nil
	}
	return handle.Get(key)
}

// GetN - read a big endian uint64, preferring uncommitted writes
func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := t.Get(handle, key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.RecordTruncated
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// Has - check a key, preferring uncommitted writes
func (t *transaction) Has(handle *PoolHandle, key []byte) (bool, error) {
	t.Lock()
	_, found, deleted := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if deleted {
		return false, nil
	}
	if found {
		return true, nil
	}
	return handle.Has(key)
}

// Commit - write all staged changes in a single batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInProgress
	}
	t.inUse = false
	defer writerLock.Unlock()
	defer t.cache.Clear()

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}
	err := poolData.database.Write(t.batch, nil)
	t.batch.Reset()
	return err
}

// Abort - discard all staged changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return
	}
	t.inUse = false
	t.batch.Reset()
	t.cache.Clear()
	writerLock.Unlock()
}
