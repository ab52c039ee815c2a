// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

import (
	"github.com/bitmark-inc/objectchaind/record"
)

// View - read access to ledger state
type View interface {
	Token(tokenId string) (*record.Token, error)
	Balance(tokenId string, owner string) (uint64, bool, error)
}

// Txn - the writes available inside one atomic update
//
// reads through a Txn see the writes already made in it
type Txn interface {
	View
	PutToken(token *record.Token) error
	PutBalance(tokenId string, owner string, balance uint64) error
	AppendTransaction(tx *record.Transaction) error
	CompareAndSwapObject(tokenId string, controller string, expectedCid string, version record.AssetVersion) error
}

// TxFilter - selection for transaction listings, zero values match all
type TxFilter struct {
	Owner   string
	TokenId string
	Types   []record.TxType
	From    int64 // unix milliseconds, inclusive
	To      int64 // unix milliseconds, inclusive
}

// Store - the ledger persistence operations
type Store interface {
	View

	Update(func(Txn) error) error
	InsertToken(token *record.Token) error
	Freeze(tokenId string, controller string) error

	Holders(tokenId string, page int, pageSize int) ([]record.Holding, int, error)
	HolderCount(tokenId string) (int, error)
	OwnerHoldings(owner string) ([]record.Holding, error)

	Transaction(id string) (*record.Transaction, error)
	Transactions(filter TxFilter, page int, pageSize int) ([]record.Transaction, int, error)
	TransactionCount() (uint64, error)

	AppendBlock(block *record.Block) error
	Block(index uint64) (*record.Block, error)
	LastBlock() (*record.Block, bool, error)
	Height() (uint64, error)
	LatestBlocks(count int) ([]record.Block, error)
	VerifyChain() (*ChainReport, error)

	PutWallet(wallet *record.Wallet) error
	Wallet(address string) (*record.Wallet, error)
}

// paging limits
const (
	DefaultPageSize = 50
	MaximumPageSize = 200
)

// ClampPage - page numbers start at 1, sizes are limited
func ClampPage(page int, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	} else if pageSize > MaximumPageSize {
		pageSize = MaximumPageSize
	}
	return page, pageSize
}

// window of a page over n items
func pageBounds(n int, page int, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start > n {
		start = n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
