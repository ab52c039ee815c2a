// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package content - content addressed blob storage
//
// a cid is "m" followed by the hex SHA-256 of the bytes; identical
// bytes are stored once and content is never changed or removed
package content

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

//go:generate mockgen -source=content.go -destination=mocks/content.go -package=mocks

// Store - content store operations
type Store interface {
	Put(fileName string, data []byte) (*record.StoredContent, error)
	Get(cid string) ([]byte, error)
	Info(cid string) (*record.StoredContent, error)
}

const (
	cidPrefix      = "m"
	locationPrefix = "leveldb:D/"

	// blobs larger than this are never cached
	maximumCachedSize = 1 << 20

	defaultCacheTime = 5 * time.Minute
)

// Content - leveldb backed store with a read cache
type Content struct {
	log   *logger.L
	cache *cache.Cache
}

// New - create a content store
//
// cacheTime of zero selects the default
func New(log *logger.L, cacheTime time.Duration) *Content {
	if cacheTime <= 0 {
		cacheTime = defaultCacheTime
	}
	return &Content{
		log:   log,
		cache: cache.New(cacheTime, 2*cacheTime),
	}
}

// Cid - the content identifier of some bytes
func Cid(data []byte) string {
	digest := sha256.Sum256(data)
	return cidPrefix + hex.EncodeToString(digest[:])
}

// Put - store bytes once, returning the existing record if present
func (c *Content) Put(fileName string, data []byte) (*record.StoredContent, error) {
	if 0 == len(data) {
		return nil, fault.EmptyContent
	}

	cid := Cid(data)
	existing, err := c.Info(cid)
	if nil == err {
		return existing, nil
	}
	if fault.ContentNotFound != err {
		return nil, err
	}

	stored := &record.StoredContent{
		Cid:       cid,
		Location:  locationPrefix + cid,
		FileName:  fileName,
		Size:      int64(len(data)),
		CreatedAt: time.Now().UnixMilli(),
	}
	buffer, err := json.Marshal(stored)
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	// re-check under the writer lock
	found, err := trx.Has(storage.Pool.Contents, []byte(cid))
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if found {
		trx.Abort()
		return c.Info(cid)
	}

	trx.Put(storage.Pool.Blobs, []byte(cid), data)
	trx.Put(storage.Pool.Contents, []byte(cid), buffer)
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	c.log.Debugf("stored: %s  size: %d", cid, len(data))
	if len(data) <= maximumCachedSize {
		c.cache.SetDefault(cid, data)
	}
	return stored, nil
}

// Get - the bytes for a cid
func (c *Content) Get(cid string) ([]byte, error) {
	if data, found := c.cache.Get(cid); found {
		return data.([]byte), nil
	}

	data, err := storage.Pool.Blobs.Get([]byte(cid))
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.ContentNotFound
	}
	if len(data) <= maximumCachedSize {
		c.cache.SetDefault(cid, data)
	}
	return data, nil
}

// Info - the index record for a cid
func (c *Content) Info(cid string) (*record.StoredContent, error) {
	buffer, err := storage.Pool.Contents.Get([]byte(cid))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.ContentNotFound
	}
	stored := &record.StoredContent{}
	err = json.Unmarshal(buffer, stored)
	if nil != err {
		return nil, err
	}
	return stored, nil
}
