// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

// Ledger - the leveldb backed store
//
// storage must be initialised before use
type Ledger struct {
	log *logger.L
}

// New - create a ledger over the global storage pools
func New(log *logger.L) *Ledger {
	return &Ledger{
		log: log,
	}
}

// Update - run f inside one storage transaction
//
// any error from f discards every write it made
func (l *Ledger) Update(f func(Txn) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(&ledgerTxn{trx: trx})
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// Token - fetch a token by id
func (l *Ledger) Token(tokenId string) (*record.Token, error) {
	return readToken(storage.Pool.Tokens.Get, tokenId)
}

// Balance - fetch the balance of an owner for a token
//
// second result is false if no holding was ever created
func (l *Ledger) Balance(tokenId string, owner string) (uint64, bool, error) {
	return storage.Pool.Holdings.GetN(holdingKey(tokenId, owner))
}

func readToken(get func([]byte) ([]byte, error), tokenId string) (*record.Token, error) {
	buffer, err := get([]byte(tokenId))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.TokenNotFound
	}
	token := &record.Token{}
	err = json.Unmarshal(buffer, token)
	if nil != err {
		return nil, err
	}
	return token, nil
}

// ledgerTxn - Txn over a storage transaction
type ledgerTxn struct {
	trx storage.Transaction
}

func (t *ledgerTxn) get(p *storage.PoolHandle) func([]byte) ([]byte, error) {
	return func(key []byte) ([]byte, error) {
		return t.trx.Get(p, key)
	}
}

func (t *ledgerTxn) Token(tokenId string) (*record.Token, error) {
	return readToken(t.get(storage.Pool.Tokens), tokenId)
}

func (t *ledgerTxn) Balance(tokenId string, owner string) (uint64, bool, error) {
	return t.trx.GetN(storage.Pool.Holdings, holdingKey(tokenId, owner))
}

func (t *ledgerTxn) PutToken(token *record.Token) error {
	buffer, err := json.Marshal(token)
	if nil != err {
		return err
	}
	t.trx.Put(storage.Pool.Tokens, []byte(token.TokenId), buffer)
	return nil
}

// PutBalance - upsert a holding and its index entries
//
// only positive balances are ranked and counted as holders
func (t *ledgerTxn) PutBalance(tokenId string, owner string, balance uint64) error {
	key := holdingKey(tokenId, owner)
	previous, _, err := t.trx.GetN(storage.Pool.Holdings, key)
	if nil != err {
		return err
	}

	if 0 != previous {
		t.trx.Delete(storage.Pool.HolderRank, rankKey(tokenId, previous, owner))
	}
	if 0 != balance {
		t.trx.Put(storage.Pool.HolderRank, rankKey(tokenId, balance, owner), []byte{})
	}

	switch {
	case 0 == previous && 0 != balance:
		err = t.addCount(holderCountKey(tokenId), 1)
	case 0 != previous && 0 == balance:
		err = t.addCount(holderCountKey(tokenId), -1)
	}
	if nil != err {
		return err
	}

	t.trx.PutN(storage.Pool.Holdings, key, balance)
	t.trx.Put(storage.Pool.OwnerHoldings, ownerKey(owner, tokenId), []byte{})
	return nil
}

func (t *ledgerTxn) addCount(key []byte, delta int64) error {
	n, _, err := t.trx.GetN(storage.Pool.Counters, key)
	if nil != err {
		return err
	}
	if delta < 0 && n < uint64(-delta) {
		return fault.RecordTruncated
	}
	t.trx.PutN(storage.Pool.Counters, key, uint64(int64(n)+delta))
	return nil
}

// AppendTransaction - write a settled transaction to the log
//
// the log is append only: an existing id is refused
func (t *ledgerTxn) AppendTransaction(tx *record.Transaction) error {
	found, err := t.trx.Has(storage.Pool.Transactions, []byte(tx.Id))
	if nil != err {
		return err
	}
	if found {
		return fault.TransactionAlreadyExists
	}

	buffer, err := json.Marshal(tx)
	if nil != err {
		return err
	}

	count, _, err := t.trx.GetN(storage.Pool.Counters, transactionCounterKey)
	if nil != err {
		return err
	}
	count += 1
	sequence := uint64Key(count)

	id := []byte(tx.Id)
	t.trx.Put(storage.Pool.Transactions, id, append(sequence, buffer...))
	t.trx.Put(storage.Pool.TxSequence, sequence, id)
	t.trx.PutN(storage.Pool.Counters, transactionCounterKey, count)

	t.trx.Put(storage.Pool.TokenTxs, sequenceKey(tx.TokenId, count), id)
	err = t.addCount(tokenTxCountKey(tx.TokenId), 1)
	if nil != err {
		return err
	}

	owners := []string{tx.FromAddress}
	if tx.ToAddress != tx.FromAddress {
		owners = append(owners, tx.ToAddress)
	}
	for _, owner := range owners {
		if "" == owner {
			continue
		}
		t.trx.Put(storage.Pool.OwnerTxs, sequenceKey(owner, count), id)
		err = t.addCount(ownerTxCountKey(owner), 1)
		if nil != err {
			return err
		}
	}
	return nil
}

// CompareAndSwapObject - conditionally advance the token's object
//
// succeeds only while the token's controller is still controller and
// its current cid is still expectedCid; the check and the write happen
// under the single writer lock of the enclosing transaction
func (t *ledgerTxn) CompareAndSwapObject(tokenId string, controller string, expectedCid string, version record.AssetVersion) error {
	token, err := t.Token(tokenId)
	if fault.TokenNotFound == err {
		return fault.ObjectPreconditionFailed
	}
	if nil != err {
		return err
	}

	if "" == controller || token.ObjectControllerAddress != controller || token.CurrentObjectCid != expectedCid {
		return fault.ObjectPreconditionFailed
	}

	token.ObjectVersions = append(token.ObjectVersions, version)
	token.CurrentObjectCid = version.AssetCid
	token.CurrentVersion = version.VersionNumber

	return t.PutToken(token)
}
