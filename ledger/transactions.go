// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

// Transaction - fetch a settled transaction
//
// queued transactions are not visible here
func (l *Ledger) Transaction(id string) (*record.Transaction, error) {
	buffer, err := storage.Pool.Transactions.Get([]byte(id))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.TransactionNotFound
	}
	return decodeTransaction(buffer)
}

// stored as: sequence ++ JSON
func decodeTransaction(buffer []byte) (*record.Transaction, error) {
	if len(buffer) < 8 {
		return nil, fault.RecordTruncated
	}
	tx := &record.Transaction{}
	err := json.Unmarshal(buffer[8:], tx)
	if nil != err {
		return nil, err
	}
	return tx, nil
}

// TransactionCount - total settled transactions
func (l *Ledger) TransactionCount() (uint64, error) {
	n, _, err := storage.Pool.Counters.GetN(transactionCounterKey)
	return n, err
}

func (f *TxFilter) match(tx *record.Transaction) bool {
	if "" != f.Owner && !tx.Involves(f.Owner) {
		return false
	}
	if "" != f.TokenId && f.TokenId != tx.TokenId {
		return false
	}
	if 0 != len(f.Types) {
		found := false
		for _, t := range f.Types {
			if t == tx.Type {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if 0 != f.From && tx.CreatedAt < f.From {
		return false
	}
	if 0 != f.To && tx.CreatedAt > f.To {
		return false
	}
	return true
}

// only the zero filter matches everything
func (f *TxFilter) empty() bool {
	return "" == f.Owner && "" == f.TokenId && 0 == len(f.Types) && 0 == f.From && 0 == f.To
}

// Transactions - settled transactions matching a filter, newest first
//
// returns one page and the total number of matches
func (l *Ledger) Transactions(filter TxFilter, page int, pageSize int) ([]record.Transaction, int, error) {
	page, pageSize = ClampPage(page, pageSize)
	start, end := (page-1)*pageSize, page*pageSize

	// pick the narrowest index, the rest of the filter still applies
	cursor := storage.Pool.TxSequence.NewFetchCursor()
	countKey := transactionCounterKey
	rest := filter
	switch {
	case "" != filter.Owner:
		cursor = storage.Pool.OwnerTxs.NewFetchCursor().Prefix(joinKey(filter.Owner, ""))
		countKey = ownerTxCountKey(filter.Owner)
		rest.Owner = ""
	case "" != filter.TokenId:
		cursor = storage.Pool.TokenTxs.NewFetchCursor().Prefix(joinKey(filter.TokenId, ""))
		countKey = tokenTxCountKey(filter.TokenId)
		rest.TokenId = ""
	}

	// ids are read before decoding so the iterator is released
	if rest.empty() {
		total, _, err := storage.Pool.Counters.GetN(countKey)
		if nil != err {
			return nil, 0, err
		}

		ids := make([]string, 0, pageSize)
		n := 0
		err = cursor.MapReverse(func(key []byte, value []byte) error {
			if n >= end {
				return storage.ErrStopMap
			}
			n += 1
			if n > start {
				ids = append(ids, string(value))
			}
			return nil
		})
		if nil != err {
			return nil, 0, err
		}

		items, err := l.decodeAll(ids)
		if nil != err {
			return nil, 0, err
		}
		return items, int(total), nil
	}

	ids := []string{}
	err := cursor.MapReverse(func(key []byte, value []byte) error {
		ids = append(ids, string(value))
		return nil
	})
	if nil != err {
		return nil, 0, err
	}

	items := make([]record.Transaction, 0, pageSize)
	total := 0
	for _, id := range ids {
		tx, err := l.Transaction(id)
		if nil != err {
			return nil, 0, err
		}
		if !rest.match(tx) {
			continue
		}
		if total >= start && total < end {
			items = append(items, *tx)
		}
		total += 1
	}
	return items, total, nil
}

func (l *Ledger) decodeAll(ids []string) ([]record.Transaction, error) {
	items := make([]record.Transaction, 0, len(ids))
	for _, id := range ids {
		tx, err := l.Transaction(id)
		if nil != err {
			return nil, err
		}
		items = append(items, *tx)
	}
	return items, nil
}
