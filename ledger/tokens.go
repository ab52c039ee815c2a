// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

// InsertToken - store a new token, the id must be unused
func (l *Ledger) InsertToken(token *record.Token) error {
	if !record.ValidTokenId(token.TokenId) {
		return fault.InvalidTokenId
	}
	return l.Update(func(txn Txn) error {
		_, err := txn.Token(token.TokenId)
		if nil == err {
			return fault.TokenAlreadyExists
		}
		if fault.TokenNotFound != err {
			return err
		}
		return txn.PutToken(token)
	})
}

// Freeze - stop all further object updates
//
// only the controller may freeze and only once
func (l *Ledger) Freeze(tokenId string, controller string) error {
	return l.Update(func(txn Txn) error {
		token, err := txn.Token(tokenId)
		if nil != err {
			return err
		}
		if token.ObjectFrozen || "" == controller || token.ObjectControllerAddress != controller {
			return fault.AlreadyFrozen
		}
		token.ObjectFrozen = true
		return txn.PutToken(token)
	})
}

// Holders - owners with a positive balance, largest first
//
// returns one page and the total number of holders
func (l *Ledger) Holders(tokenId string, page int, pageSize int) ([]record.Holding, int, error) {
	page, pageSize = ClampPage(page, pageSize)
	start, end := (page-1)*pageSize, page*pageSize

	total, err := l.HolderCount(tokenId)
	if nil != err {
		return nil, 0, err
	}

	holdings := make([]record.Holding, 0, pageSize)
	prefixLength := len(tokenId)
	n := 0
	cursor := storage.Pool.HolderRank.NewFetchCursor().Prefix(joinKey(tokenId, ""))
	err = cursor.Map(func(key []byte, value []byte) error {
		if n >= end {
			return storage.ErrStopMap
		}
		n += 1
		if n <= start {
			return nil
		}
		balance, owner, err := splitRankKey(key, prefixLength)
		if nil != err {
			return err
		}
		holdings = append(holdings, record.Holding{
			TokenId:      tokenId,
			OwnerAddress: owner,
			Balance:      balance,
		})
		return nil
	})
	if nil != err {
		return nil, 0, err
	}
	return holdings, total, nil
}

// HolderCount - number of owners with a positive balance
func (l *Ledger) HolderCount(tokenId string) (int, error) {
	n, _, err := storage.Pool.Counters.GetN(holderCountKey(tokenId))
	return int(n), err
}

// OwnerHoldings - every positive holding of an address
func (l *Ledger) OwnerHoldings(owner string) ([]record.Holding, error) {
	tokenIds := []string{}
	prefixLength := len(owner)
	cursor := storage.Pool.OwnerHoldings.NewFetchCursor().Prefix(joinKey(owner, ""))
	err := cursor.Map(func(key []byte, value []byte) error {
		tokenIds = append(tokenIds, keySuffix(key, prefixLength))
		return nil
	})
	if nil != err {
		return nil, err
	}

	holdings := []record.Holding{}
	for _, tokenId := range tokenIds {
		balance, found, err := l.Balance(tokenId, owner)
		if nil != err {
			return nil, err
		}
		if !found || 0 == balance {
			continue
		}
		holdings = append(holdings, record.Holding{
			TokenId:      tokenId,
			OwnerAddress: owner,
			Balance:      balance,
		})
	}
	return holdings, nil
}
