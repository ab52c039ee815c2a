// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/objectchaind/canonical"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/merkle"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

const (
	ownerA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	ownerB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	ownerC = "cccccccccccccccccccccccccccccccccccccccc"
)

func setup(t *testing.T) *ledger.Ledger {
	dir, err := os.MkdirTemp("", "ledger-test-")
	require.Nil(t, err, "temporary directory")

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage initialise")

	t.Cleanup(func() {
		storage.Finalise()
		os.RemoveAll(dir)
	})
	return ledger.New(logger.New("ledger"))
}

func newToken(id string) *record.Token {
	return &record.Token{
		TokenId:                 id,
		Name:                    "token " + id,
		MaxSupply:               100,
		Transferable:            true,
		CurrentObjectCid:        "m01",
		CurrentVersion:          1,
		ObjectControllerAddress: ownerA,
		ObjectVersions: []record.AssetVersion{
			{AssetCid: "m01", VersionNumber: 1},
		},
	}
}

func TestInsertToken(t *testing.T) {
	l := setup(t)

	_, err := l.Token("t1")
	assert.Equal(t, fault.TokenNotFound, err, "missing token")

	require.Nil(t, l.InsertToken(newToken("t1")), "insert")
	assert.Equal(t, fault.TokenAlreadyExists, l.InsertToken(newToken("t1")), "duplicate insert")

	token, err := l.Token("t1")
	require.Nil(t, err, "read back")
	assert.Equal(t, "token t1", token.Name, "wrong name")
	assert.Equal(t, int64(1), token.CurrentVersion, "wrong version")
}

func TestInsertTokenInvalidId(t *testing.T) {
	l := setup(t)

	require.Nil(t, l.InsertToken(newToken("a")), "insert")

	// would share the holding key prefix of token "a"
	err := l.InsertToken(newToken("a\x00" + ownerB))
	assert.Equal(t, fault.InvalidTokenId, err, "separator byte accepted")

	holders, total, err := l.Holders("a", 1, 50)
	require.Nil(t, err, "holders")
	assert.Equal(t, 0, total, "wrong total")
	assert.Equal(t, 0, len(holders), "holders listed")
}

func TestUpdateIsAtomic(t *testing.T) {
	l := setup(t)
	require.Nil(t, l.InsertToken(newToken("t1")), "insert")

	err := l.Update(func(txn ledger.Txn) error {
		txn.PutBalance("t1", ownerA, 10)
		balance, found, err := txn.Balance("t1", ownerA)
		assert.Nil(t, err, "balance in txn")
		assert.True(t, found, "balance not visible in txn")
		assert.Equal(t, uint64(10), balance, "wrong balance in txn")
		return fault.InvalidQuantity
	})
	assert.Equal(t, fault.InvalidQuantity, err, "error not returned")

	_, found, err := l.Balance("t1", ownerA)
	assert.Nil(t, err, "balance")
	assert.False(t, found, "aborted write was committed")

	err = l.Update(func(txn ledger.Txn) error {
		txn.PutBalance("t1", ownerA, 10)
		token, err := txn.Token("t1")
		if nil != err {
			return err
		}
		token.TotalMinted += 10
		if err := txn.PutToken(token); nil != err {
			return err
		}
		return txn.AppendTransaction(&record.Transaction{Id: "x1", Type: record.MintType, TokenId: "t1", ToAddress: ownerA, Quantity: 10})
	})
	require.Nil(t, err, "commit")

	balance, found, err := l.Balance("t1", ownerA)
	assert.Nil(t, err, "balance")
	assert.True(t, found, "balance not committed")
	assert.Equal(t, uint64(10), balance, "wrong balance")

	token, err := l.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, uint64(10), token.TotalMinted, "wrong minted")

	n, err := l.TransactionCount()
	assert.Nil(t, err, "count")
	assert.Equal(t, uint64(1), n, "wrong count")
}

func TestAppendTransactionOnce(t *testing.T) {
	l := setup(t)

	tx := &record.Transaction{Id: "dup", Type: record.MintType, TokenId: "t1", Quantity: 1}
	require.Nil(t, l.Update(func(txn ledger.Txn) error { return txn.AppendTransaction(tx) }), "first append")

	err := l.Update(func(txn ledger.Txn) error { return txn.AppendTransaction(tx) })
	assert.Equal(t, fault.TransactionAlreadyExists, err, "second append")

	stored, err := l.Transaction("dup")
	require.Nil(t, err, "read")
	assert.Equal(t, *tx, *stored, "wrong transaction")

	_, err = l.Transaction("missing")
	assert.Equal(t, fault.TransactionNotFound, err, "missing transaction")
}

func TestCompareAndSwapObject(t *testing.T) {
	l := setup(t)
	require.Nil(t, l.InsertToken(newToken("t1")), "insert")

	version := record.AssetVersion{AssetCid: "m02", VersionNumber: 2, PreviousAssetCid: "m01", CommittedByAddress: ownerA}

	// stale expected cid
	err := l.Update(func(txn ledger.Txn) error {
		return txn.CompareAndSwapObject("t1", ownerA, "m00", version)
	})
	assert.Equal(t, fault.ObjectPreconditionFailed, err, "stale cid accepted")

	// wrong controller
	err = l.Update(func(txn ledger.Txn) error {
		return txn.CompareAndSwapObject("t1", ownerB, "m01", version)
	})
	assert.Equal(t, fault.ObjectPreconditionFailed, err, "wrong controller accepted")

	// missing token
	err = l.Update(func(txn ledger.Txn) error {
		return txn.CompareAndSwapObject("none", ownerA, "m01", version)
	})
	assert.Equal(t, fault.ObjectPreconditionFailed, err, "missing token accepted")

	err = l.Update(func(txn ledger.Txn) error {
		return txn.CompareAndSwapObject("t1", ownerA, "m01", version)
	})
	require.Nil(t, err, "swap")

	// the same swap again no longer matches
	err = l.Update(func(txn ledger.Txn) error {
		return txn.CompareAndSwapObject("t1", ownerA, "m01", version)
	})
	assert.Equal(t, fault.ObjectPreconditionFailed, err, "repeat swap accepted")

	token, err := l.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, "m02", token.CurrentObjectCid, "wrong cid")
	assert.Equal(t, int64(2), token.CurrentVersion, "wrong version")
	assert.Equal(t, 2, len(token.ObjectVersions), "wrong history length")
}

func TestFreeze(t *testing.T) {
	l := setup(t)
	require.Nil(t, l.InsertToken(newToken("t1")), "insert")

	assert.Equal(t, fault.TokenNotFound, l.Freeze("none", ownerA), "missing token")
	assert.Equal(t, fault.AlreadyFrozen, l.Freeze("t1", ownerB), "non controller froze")
	require.Nil(t, l.Freeze("t1", ownerA), "freeze")
	assert.Equal(t, fault.AlreadyFrozen, l.Freeze("t1", ownerA), "frozen twice")

	token, err := l.Token("t1")
	require.Nil(t, err, "token")
	assert.True(t, token.ObjectFrozen, "not frozen")
}

func TestHolders(t *testing.T) {
	l := setup(t)

	err := l.Update(func(txn ledger.Txn) error {
		txn.PutBalance("t1", ownerA, 5)
		txn.PutBalance("t1", ownerB, 20)
		txn.PutBalance("t1", ownerC, 0)
		txn.PutBalance("t2", ownerA, 7)
		txn.PutBalance("t10", ownerC, 9) // shares a prefix with t1
		return nil
	})
	require.Nil(t, err, "balances")

	holders, total, err := l.Holders("t1", 1, 50)
	require.Nil(t, err, "holders")
	assert.Equal(t, 2, total, "zero balance counted")
	assert.Equal(t, []record.Holding{
		{TokenId: "t1", OwnerAddress: ownerB, Balance: 20},
		{TokenId: "t1", OwnerAddress: ownerA, Balance: 5},
	}, holders, "wrong holders")

	holders, total, err = l.Holders("t1", 2, 1)
	require.Nil(t, err, "holders page 2")
	assert.Equal(t, 2, total, "wrong total")
	assert.Equal(t, ownerA, holders[0].OwnerAddress, "wrong page 2")

	holders, _, err = l.Holders("t1", 3, 1)
	require.Nil(t, err, "holders page 3")
	assert.Equal(t, 0, len(holders), "page past end")

	n, err := l.HolderCount("t1")
	assert.Nil(t, err, "count")
	assert.Equal(t, 2, n, "wrong holder count")

	owned, err := l.OwnerHoldings(ownerA)
	require.Nil(t, err, "owner holdings")
	assert.Equal(t, 2, len(owned), "wrong owned count")

	owned, err = l.OwnerHoldings(ownerC)
	require.Nil(t, err, "owner holdings")
	assert.Equal(t, []record.Holding{{TokenId: "t10", OwnerAddress: ownerC, Balance: 9}}, owned, "zero holding listed")
}

func TestHoldersFollowBalance(t *testing.T) {
	l := setup(t)

	put := func(owner string, balance uint64) {
		err := l.Update(func(txn ledger.Txn) error {
			return txn.PutBalance("t1", owner, balance)
		})
		require.Nil(t, err, "put balance")
	}

	put(ownerA, 30)
	put(ownerB, 10)
	put(ownerC, 20)

	holders, total, err := l.Holders("t1", 1, 2)
	require.Nil(t, err, "holders")
	assert.Equal(t, 3, total, "wrong total")
	assert.Equal(t, []record.Holding{
		{TokenId: "t1", OwnerAddress: ownerA, Balance: 30},
		{TokenId: "t1", OwnerAddress: ownerC, Balance: 20},
	}, holders, "wrong first page")

	// B overtakes, A drops out
	put(ownerB, 50)
	put(ownerA, 0)

	holders, total, err = l.Holders("t1", 1, 50)
	require.Nil(t, err, "holders")
	assert.Equal(t, 2, total, "zero balance still counted")
	assert.Equal(t, []record.Holding{
		{TokenId: "t1", OwnerAddress: ownerB, Balance: 50},
		{TokenId: "t1", OwnerAddress: ownerC, Balance: 20},
	}, holders, "not re-ranked")

	// same balance twice leaves one entry
	put(ownerC, 20)
	n, err := l.HolderCount("t1")
	require.Nil(t, err, "count")
	assert.Equal(t, 2, n, "unchanged balance counted twice")

	holders, _, err = l.Holders("t1", 2, 1)
	require.Nil(t, err, "holders page 2")
	assert.Equal(t, []record.Holding{{TokenId: "t1", OwnerAddress: ownerC, Balance: 20}}, holders, "duplicate rank entry")
}

func TestClampPage(t *testing.T) {
	items := []struct {
		page, size       int
		expPage, expSize int
	}{
		{0, 0, 1, ledger.DefaultPageSize},
		{-3, 10, 1, 10},
		{2, 500, 2, ledger.MaximumPageSize},
		{4, 1, 4, 1},
	}
	for i, item := range items {
		page, size := ledger.ClampPage(item.page, item.size)
		assert.Equal(t, item.expPage, page, "%d: page", i)
		assert.Equal(t, item.expSize, size, "%d: size", i)
	}
}

func TestTransactions(t *testing.T) {
	l := setup(t)

	txs := []record.Transaction{
		{Id: "1", Type: record.MintType, TokenId: "t1", FromAddress: record.MintAddress, ToAddress: ownerA, Quantity: 5, CreatedAt: 1000},
		{Id: "2", Type: record.TransferType, TokenId: "t1", FromAddress: ownerA, ToAddress: ownerB, Quantity: 2, CreatedAt: 2000},
		{Id: "3", Type: record.MintType, TokenId: "t2", FromAddress: record.MintAddress, ToAddress: ownerC, Quantity: 1, CreatedAt: 3000},
		{Id: "4", Type: record.BurnType, TokenId: "t1", FromAddress: ownerB, ToAddress: record.BurnAddress, Quantity: 1, CreatedAt: 4000},
	}
	err := l.Update(func(txn ledger.Txn) error {
		for i := range txs {
			if err := txn.AppendTransaction(&txs[i]); nil != err {
				return err
			}
		}
		return nil
	})
	require.Nil(t, err, "append")

	items, total, err := l.Transactions(ledger.TxFilter{}, 1, 50)
	require.Nil(t, err, "list")
	assert.Equal(t, 4, total, "wrong total")
	assert.Equal(t, "4", items[0].Id, "not newest first")

	items, total, err = l.Transactions(ledger.TxFilter{Owner: ownerB}, 1, 50)
	require.Nil(t, err, "owner list")
	assert.Equal(t, 2, total, "wrong owner total")
	assert.Equal(t, "4", items[0].Id, "wrong first")
	assert.Equal(t, "2", items[1].Id, "wrong second")

	_, total, err = l.Transactions(ledger.TxFilter{TokenId: "t1", Types: []record.TxType{record.MintType, record.BurnType}}, 1, 50)
	require.Nil(t, err, "type list")
	assert.Equal(t, 2, total, "wrong type total")

	items, total, err = l.Transactions(ledger.TxFilter{From: 2000, To: 3000}, 1, 1)
	require.Nil(t, err, "time list")
	assert.Equal(t, 2, total, "wrong time total")
	assert.Equal(t, 1, len(items), "page size ignored")
	assert.Equal(t, "3", items[0].Id, "wrong time first")
}

func TestTransactionsIndexedPaging(t *testing.T) {
	l := setup(t)

	txs := []record.Transaction{}
	for i := 1; i <= 5; i += 1 {
		txs = append(txs, record.Transaction{Id: fmt.Sprintf("m%d", i), Type: record.MintType, TokenId: "t1", FromAddress: record.MintAddress, ToAddress: ownerA, Quantity: 1, CreatedAt: int64(i)})
	}
	txs = append(txs,
		record.Transaction{Id: "self", Type: record.TransferType, TokenId: "t1", FromAddress: ownerA, ToAddress: ownerA, Quantity: 1, CreatedAt: 6},
		record.Transaction{Id: "other", Type: record.MintType, TokenId: "t10", FromAddress: record.MintAddress, ToAddress: ownerB, Quantity: 1, CreatedAt: 7},
	)
	err := l.Update(func(txn ledger.Txn) error {
		for i := range txs {
			if err := txn.AppendTransaction(&txs[i]); nil != err {
				return err
			}
		}
		return nil
	})
	require.Nil(t, err, "append")

	items, total, err := l.Transactions(ledger.TxFilter{Owner: ownerA}, 1, 2)
	require.Nil(t, err, "owner page 1")
	assert.Equal(t, 6, total, "self transfer counted twice")
	require.Equal(t, 2, len(items), "wrong page length")
	assert.Equal(t, "self", items[0].Id, "wrong first")
	assert.Equal(t, "m5", items[1].Id, "wrong second")

	items, _, err = l.Transactions(ledger.TxFilter{Owner: ownerA}, 3, 2)
	require.Nil(t, err, "owner page 3")
	require.Equal(t, 2, len(items), "wrong last page length")
	assert.Equal(t, "m2", items[0].Id, "wrong page 3 first")
	assert.Equal(t, "m1", items[1].Id, "wrong page 3 second")

	items, _, err = l.Transactions(ledger.TxFilter{Owner: ownerA}, 4, 2)
	require.Nil(t, err, "owner page 4")
	assert.Equal(t, 0, len(items), "page past end")

	// t10 shares a prefix with t1
	items, total, err = l.Transactions(ledger.TxFilter{TokenId: "t1"}, 1, 50)
	require.Nil(t, err, "token list")
	assert.Equal(t, 6, total, "wrong token total")
	assert.Equal(t, 6, len(items), "wrong token page")

	items, total, err = l.Transactions(ledger.TxFilter{TokenId: "t10"}, 1, 50)
	require.Nil(t, err, "token list")
	assert.Equal(t, 1, total, "wrong t10 total")
	assert.Equal(t, "other", items[0].Id, "wrong t10 item")

	// remaining filter fields still apply on an index
	items, total, err = l.Transactions(ledger.TxFilter{Owner: ownerA, Types: []record.TxType{record.TransferType}}, 1, 50)
	require.Nil(t, err, "owner transfers")
	assert.Equal(t, 1, total, "wrong transfer total")
	assert.Equal(t, "self", items[0].Id, "wrong transfer")

	_, total, err = l.Transactions(ledger.TxFilter{Owner: ownerC}, 1, 50)
	require.Nil(t, err, "unknown owner")
	assert.Equal(t, 0, total, "unknown owner has transactions")
}

// seal a block the same way the producer does
func makeBlock(t *testing.T, index uint64, previous string, txs []record.Transaction, key *identity.KeyPair) *record.Block {
	buffer, err := json.Marshal(txs)
	require.Nil(t, err, "marshal")
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.Id
	}
	b := &record.Block{
		Index:            index,
		PreviousHash:     previous,
		MerkleRoot:       merkle.Root(ids),
		TxCount:          len(txs),
		TransactionsJson: string(buffer),
	}
	b.Hash = canonical.Sha256Hex(record.BlockPayload(b.Index, b.PreviousHash, b.MerkleRoot, b.TransactionsJson))
	if nil != key {
		b.ProducerPublicKeyPem = key.PublicKeyPEM
		b.ProducerSignatureBase64, err = identity.Sign(key.PrivateKey, b.Hash)
		require.Nil(t, err, "sign")
	}
	return b
}

// append transactions to the log as the engine does
func settle(t *testing.T, l *ledger.Ledger, ids ...string) {
	err := l.Update(func(txn ledger.Txn) error {
		for _, id := range ids {
			err := txn.AppendTransaction(&record.Transaction{Id: id, Type: record.MintType, TokenId: "t1", ToAddress: ownerA, Quantity: 1})
			if nil != err {
				return err
			}
		}
		return nil
	})
	require.Nil(t, err, "settle")
}

func TestBlocks(t *testing.T) {
	l := setup(t)
	settle(t, l, "a", "b", "c")

	key, err := identity.NewKeyPair()
	require.Nil(t, err, "key pair")

	_, found, err := l.LastBlock()
	assert.Nil(t, err, "last block")
	assert.False(t, found, "empty chain has a block")

	b1 := makeBlock(t, 1, "", []record.Transaction{{Id: "a"}}, key)
	require.Nil(t, l.AppendBlock(b1), "append 1")
	assert.Equal(t, fault.BlockIndexExists, l.AppendBlock(b1), "append 1 again")

	bad := makeBlock(t, 2, "wrong", []record.Transaction{{Id: "b"}}, nil)
	assert.Equal(t, fault.ChainBroken, l.AppendBlock(bad), "bad link accepted")

	gap := makeBlock(t, 3, b1.Hash, []record.Transaction{{Id: "b"}}, nil)
	assert.Equal(t, fault.ChainBroken, l.AppendBlock(gap), "gap accepted")

	b2 := makeBlock(t, 2, b1.Hash, []record.Transaction{{Id: "b"}, {Id: "c"}}, nil)
	require.Nil(t, l.AppendBlock(b2), "append 2")

	last, found, err := l.LastBlock()
	require.Nil(t, err, "last block")
	assert.True(t, found, "last block missing")
	assert.Equal(t, uint64(2), last.Index, "wrong last")

	height, err := l.Height()
	assert.Nil(t, err, "height")
	assert.Equal(t, uint64(2), height, "wrong height")

	block, err := l.Block(1)
	require.Nil(t, err, "block 1")
	assert.Equal(t, b1.Hash, block.Hash, "wrong block 1")

	_, err = l.Block(9)
	assert.Equal(t, fault.BlockNotFound, err, "missing block")

	latest, err := l.LatestBlocks(10)
	require.Nil(t, err, "latest")
	assert.Equal(t, 2, len(latest), "wrong latest count")
	assert.Equal(t, uint64(2), latest[0].Index, "not newest first")

	latest, err = l.LatestBlocks(1)
	require.Nil(t, err, "latest 1")
	assert.Equal(t, 1, len(latest), "limit ignored")

	report, err := l.VerifyChain()
	require.Nil(t, err, "verify")
	assert.True(t, report.Valid, "valid chain reported broken: %s", report.Reason)
	assert.Equal(t, uint64(2), report.Blocks, "wrong block count")
}

func TestVerifyChainDetectsTampering(t *testing.T) {
	l := setup(t)

	b1 := makeBlock(t, 1, "", []record.Transaction{{Id: "a"}}, nil)
	require.Nil(t, l.AppendBlock(b1), "append 1")

	// wrong merkle root but a self consistent hash
	b2 := makeBlock(t, 2, b1.Hash, []record.Transaction{{Id: "b"}}, nil)
	b2.MerkleRoot = merkle.Root([]string{"z"})
	b2.Hash = b2.ComputeHash()
	require.Nil(t, l.AppendBlock(b2), "append 2")

	report, err := l.VerifyChain()
	require.Nil(t, err, "verify")
	assert.False(t, report.Valid, "tampered chain reported valid")
	assert.Equal(t, uint64(2), report.BrokenAt, "wrong broken block")
	assert.Equal(t, "merkle root mismatch", report.Reason, "wrong reason")
}

func TestVerifyChainDetectsUnsealed(t *testing.T) {
	l := setup(t)
	settle(t, l, "a")

	report, err := l.VerifyChain()
	require.Nil(t, err, "verify empty")
	assert.False(t, report.Valid, "unsealed transaction on empty chain")
	assert.Equal(t, uint64(1), report.BrokenAt, "wrong broken block")

	b1 := makeBlock(t, 1, "", []record.Transaction{{Id: "a"}}, nil)
	require.Nil(t, l.AppendBlock(b1), "append 1")

	report, err = l.VerifyChain()
	require.Nil(t, err, "verify")
	assert.True(t, report.Valid, "sealed chain reported broken: %s", report.Reason)

	// settled but the block append never happened
	settle(t, l, "b", "c")

	report, err = l.VerifyChain()
	require.Nil(t, err, "verify")
	assert.False(t, report.Valid, "unsealed transactions reported valid")
	assert.Equal(t, uint64(1), report.Blocks, "wrong block count")
	assert.Equal(t, uint64(2), report.BrokenAt, "wrong broken block")
	assert.Equal(t, "settled transactions: 3  sealed: 1", report.Reason, "wrong reason")
}

func TestWallets(t *testing.T) {
	l := setup(t)

	_, err := l.Wallet(ownerA)
	assert.Equal(t, fault.WalletNotFound, err, "missing wallet")

	w := &record.Wallet{Address: ownerA, Label: "main", CreatedAt: 5}
	require.Nil(t, l.PutWallet(w), "put")

	stored, err := l.Wallet(ownerA)
	require.Nil(t, err, "get")
	assert.Equal(t, *w, *stored, "wrong wallet")
}
