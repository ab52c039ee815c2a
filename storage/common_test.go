// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/objectchaind/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// common test setup routines

// configure for testing
//
// returns the database path so a test can reopen it
func setup(t *testing.T) string {
	dir, err := os.MkdirTemp("", "storage-test-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	database := filepath.Join(dir, databaseFileName)
	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return database
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// data for various test routines

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
	// {"key-one", "data-one"}, // this was replaced
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")

// sample key and data
var testKey = []byte("key-two")
var testData = "data-two"
