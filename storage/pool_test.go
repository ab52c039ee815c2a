// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/storage"
)

// helper to add to pool
func poolPut(t *testing.T, trx storage.Transaction, p *storage.PoolHandle, key string, data string) {
	trx.Put(p, []byte(key), []byte(data))
}

// helper to remove from pool
func poolDelete(t *testing.T, trx storage.Transaction, p *storage.PoolHandle, key string) {
	trx.Delete(p, []byte(key))
}

// main pool test
func TestPool(t *testing.T) {
	database := setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// ensure that pool was empty
	checkAgain(t, true)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}

	poolPut(t, trx, p, "key-one", "data-one")
	poolPut(t, trx, p, "key-two", "data-two")
	poolPut(t, trx, p, "key-remove-me", "to be deleted")
	poolDelete(t, trx, p, "key-remove-me")
	poolPut(t, trx, p, "key-three", "data-three")
	poolPut(t, trx, p, "key-one", "data-one")     // duplicate
	poolPut(t, trx, p, "key-three", "data-three") // duplicate
	poolPut(t, trx, p, "key-four", "data-four")
	poolPut(t, trx, p, "key-delete-this", "to be deleted")
	poolPut(t, trx, p, "key-five", "data-five")
	poolPut(t, trx, p, "key-six", "data-six")
	poolDelete(t, trx, p, "key-delete-this")
	poolPut(t, trx, p, "key-seven", "data-seven")
	poolPut(t, trx, p, "key-one", "data-one(NEW)") // duplicate

	// nothing is visible before commit
	checkAgain(t, true)

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	// ensure that data is correct
	checkResults(t, p)

	// recheck
	checkAgain(t, false)

	// check that restarting database keeps data
	storage.Finalise()
	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage reinitialise error: %s", err)
	}
	checkAgain(t, false)
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: Excess, got: '%s'  expected: Nothing", i, a.Key)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: Mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor = p.NewFetchCursor()
	firstPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	secondPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if bytes.Equal(firstPair[1].Key, secondPair[0].Key) {
		t.Errorf("Fetch Overlap got duplicate: '%s:%s'", firstPair[1].Key, firstPair[1].Value)
	}
	assert.Equal(t, expectedElements[2].Key, secondPair[0].Key, "second fetch starts at wrong key")

	// check key exists
	found, err := p.Has(testKey)
	assert.Nil(t, err, "Has error")
	assert.True(t, found, "not found: %q", testKey)

	// retrieve a key
	d2, err := p.Get(testKey)
	assert.Nil(t, err, "Get error")
	assert.Equal(t, testData, string(d2), "Mismatch on Get")

	// check that key does not exist
	found, err = p.Has(nonExistantKey)
	assert.Nil(t, err, "Has error")
	assert.False(t, found, "unexpectedly found: %q", nonExistantKey)

	// retrieve a key not in the pool
	dn, err := p.Get(nonExistantKey)
	assert.Nil(t, err, "Get error")
	assert.Nil(t, dn, "Unexpected data on Get")
}

func checkAgain(t *testing.T, empty bool) {

	p := storage.Pool.TestData

	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(100) // all data
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if empty && 0 != len(data) {
		t.Errorf("Pool was not empty, count = %d", len(data))
	}

	for i, e := range expectedElements {

		data, err := p.Get(e.Key)
		if nil != err {
			t.Errorf("checkAgain: %d: Get error: %s", i, err)
		}
		if empty {
			if nil != data {
				t.Errorf("checkAgain: %d: Unexpected data on Get('%s'), got: '%s'  expected: nil", i, e.Key, data)
			}
		} else if !bytes.Equal(data, e.Value) {
			t.Errorf("checkAgain: %d: Mismatch on Get('%s'), got: '%s'  expected: '%s'", i, e.Key, data, e.Value)
		}
	}

	// try to retrieve some more data - should be zero
	data, err = cursor.Fetch(100)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if 0 != len(data) {
		t.Errorf("checkAgain: extra: %d elements found", len(data))
	}
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Blocks

	_, found, err := p.LastElement()
	assert.Nil(t, err, "LastElement error")
	assert.False(t, found, "empty pool has a last element")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	for _, n := range []uint64{3, 1, 2} {
		key := []byte{0, 0, 0, 0, 0, 0, 0, byte(n)}
		trx.PutN(p, key, n*10)
	}
	assert.Nil(t, trx.Commit(), "commit error")

	last, found, err := p.LastElement()
	assert.Nil(t, err, "LastElement error")
	assert.True(t, found, "last element not found")
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 3}, last.Key, "wrong last key")

	n, found, err := p.GetN(last.Key)
	assert.Nil(t, err, "GetN error")
	assert.True(t, found, "GetN not found")
	assert.Equal(t, uint64(30), n, "wrong count")

	// other pools are not affected
	_, found, err = storage.Pool.Tokens.LastElement()
	assert.Nil(t, err, "LastElement error")
	assert.False(t, found, "tokens pool should be empty")
}

func TestUninitialised(t *testing.T) {
	_, err := storage.Pool.TestData.Get(testKey)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}

func TestDoubleInitialise(t *testing.T) {
	database := setup(t)
	defer teardown(t)

	err := storage.Initialise(database, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong error")
}
