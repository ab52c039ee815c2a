// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockproducer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/objectchaind/authority"
	authoritymocks "github.com/bitmark-inc/objectchaind/authority/mocks"
	"github.com/bitmark-inc/objectchaind/blockproducer"
	"github.com/bitmark-inc/objectchaind/engine"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/merkle"
	"github.com/bitmark-inc/objectchaind/messagebus"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/reservoir"
	"github.com/bitmark-inc/objectchaind/storage"
)

const (
	ownerA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	ownerB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

type fixture struct {
	store      *ledger.Ledger
	queue      *reservoir.Queue
	producer   *blockproducer.Producer
	controller *identity.KeyPair
}

func setup(t *testing.T, signer authority.Signer) *fixture {
	dir, err := os.MkdirTemp("", "producer-test-")
	require.Nil(t, err, "temporary directory")

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage initialise")

	t.Cleanup(func() {
		storage.Finalise()
		os.RemoveAll(dir)
	})

	controller, err := identity.NewKeyPair()
	require.Nil(t, err, "controller key")

	store := ledger.New(logger.New("ledger"))
	queue := reservoir.New(logger.New("reservoir"), "")
	eng := engine.New(logger.New("engine"), store)

	return &fixture{
		store:      store,
		queue:      queue,
		producer:   blockproducer.New(logger.New("producer"), queue, eng, store, signer, time.Second, 0),
		controller: controller,
	}
}

func (f *fixture) token(t *testing.T, tokenId string, maxSupply uint64, transferable bool) {
	err := f.store.InsertToken(&record.Token{
		TokenId:                 tokenId,
		Name:                    "token " + tokenId,
		MaxSupply:               maxSupply,
		Transferable:            transferable,
		CurrentObjectCid:        "m01",
		CurrentVersion:          1,
		ObjectControllerAddress: f.controller.Address,
		ObjectVersions: []record.AssetVersion{
			{AssetCid: "m01", VersionNumber: 1},
		},
	})
	require.Nil(t, err, "insert token")
}

func (f *fixture) round(t *testing.T) *record.Block {
	block, err := f.producer.Round()
	require.Nil(t, err, "round")
	return block
}

func (f *fixture) balance(t *testing.T, tokenId string, owner string) uint64 {
	balance, _, err := f.store.Balance(tokenId, owner)
	require.Nil(t, err, "balance")
	return balance
}

func mint(tokenId string, to string, quantity int64) *record.Transaction {
	return &record.Transaction{
		Id:          record.NewId(),
		Type:        record.MintType,
		TokenId:     tokenId,
		FromAddress: record.MintAddress,
		ToAddress:   to,
		Quantity:    quantity,
	}
}

func transfer(tokenId string, from string, to string, quantity int64) *record.Transaction {
	return &record.Transaction{
		Id:          record.NewId(),
		Type:        record.TransferType,
		TokenId:     tokenId,
		FromAddress: from,
		ToAddress:   to,
		Quantity:    quantity,
	}
}

func burn(tokenId string, owner string, quantity int64) *record.Transaction {
	return &record.Transaction{
		Id:          record.NewId(),
		Type:        record.BurnType,
		TokenId:     tokenId,
		FromAddress: owner,
		ToAddress:   record.BurnAddress,
		Quantity:    quantity,
	}
}

func update(t *testing.T, key *identity.KeyPair, tokenId string, newCid string, previousCid string, version int64) *record.Transaction {
	ts := time.Now().UnixNano() / int64(time.Millisecond)
	message := identity.UpdateObjectMessage(tokenId, newCid, previousCid, version, "sha", ts)
	signature, err := identity.Sign(key.PrivateKey, message)
	require.Nil(t, err, "sign update")
	return &record.Transaction{
		Id:                record.NewId(),
		Type:              record.UpdateObjectType,
		TokenId:           tokenId,
		FromAddress:       key.Address,
		ToAddress:         key.Address,
		PublicKeyPem:      key.PublicKeyPEM,
		SignatureBase64:   signature,
		NewObjectCid:      newCid,
		PreviousObjectCid: previousCid,
		NewVersionNumber:  version,
		JsonSha256:        "sha",
		TsMs:              ts,
	}
}

func TestEmptyRoundProducesNoBlock(t *testing.T) {
	f := setup(t, nil)

	block := f.round(t)
	assert.Nil(t, block, "block from empty queue")

	height, err := f.store.Height()
	require.Nil(t, err, "height")
	assert.Equal(t, uint64(0), height, "wrong height")
}

func TestMintUpToMaxSupply(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 10, true)

	first := mint("t1", ownerA, 10)
	f.queue.Enqueue(first)
	block := f.round(t)
	require.NotNil(t, block, "no block")
	assert.Equal(t, uint64(1), block.Index, "wrong index")
	assert.Equal(t, "", block.PreviousHash, "first block has previous")
	assert.Equal(t, 1, block.TxCount, "wrong tx count")

	extra := mint("t1", ownerA, 1)
	f.queue.Enqueue(extra)
	assert.Nil(t, f.round(t), "block for rejected mint")

	_, err := f.store.Transaction(extra.Id)
	assert.Equal(t, fault.TransactionNotFound, err, "rejected mint settled")
	_, err = f.store.Transaction(first.Id)
	assert.Nil(t, err, "settled mint missing")

	token, err := f.store.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, uint64(10), token.TotalMinted, "wrong total minted")
	assert.Equal(t, uint64(10), f.balance(t, "t1", ownerA), "wrong balance")
}

func TestOverdraftTransferDropped(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	f.queue.Enqueue(mint("t1", ownerA, 5))
	require.NotNil(t, f.round(t), "mint block")

	over := transfer("t1", ownerA, ownerB, 6)
	f.queue.Enqueue(over)
	assert.Nil(t, f.round(t), "block for overdraft")

	assert.Equal(t, uint64(5), f.balance(t, "t1", ownerA), "sender changed")
	assert.Equal(t, uint64(0), f.balance(t, "t1", ownerB), "receiver changed")
	_, err := f.store.Transaction(over.Id)
	assert.Equal(t, fault.TransactionNotFound, err, "overdraft settled")
}

func TestNonTransferable(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, false)

	f.queue.Enqueue(mint("t1", ownerA, 5))
	f.queue.Enqueue(transfer("t1", ownerA, ownerB, 1))
	block := f.round(t)
	require.NotNil(t, block, "mint block")
	assert.Equal(t, 1, block.TxCount, "transfer of non transferable settled")
}

func TestGroupOrderWithinRound(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	// arrival order is transfer first, settlement order is mint first
	tr := transfer("t1", ownerA, ownerB, 3)
	mi := mint("t1", ownerA, 5)
	bu := burn("t1", ownerB, 1)
	f.queue.Enqueue(bu)
	f.queue.Enqueue(tr)
	f.queue.Enqueue(mi)

	block := f.round(t)
	require.NotNil(t, block, "no block")

	txs, err := block.Transactions()
	require.Nil(t, err, "decode transactions")
	require.Equal(t, 3, len(txs), "wrong settled count")
	assert.Equal(t, mi.Id, txs[0].Id, "mint not first")
	assert.Equal(t, tr.Id, txs[1].Id, "transfer not second")
	assert.Equal(t, bu.Id, txs[2].Id, "burn not third")
	assert.Equal(t, merkle.Root([]string{mi.Id, tr.Id, bu.Id}), block.MerkleRoot, "wrong merkle root")

	assert.Equal(t, uint64(2), f.balance(t, "t1", ownerA), "wrong balance A")
	assert.Equal(t, uint64(2), f.balance(t, "t1", ownerB), "wrong balance B")
}

func TestConservationWithCompetingTransfers(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	f.queue.Enqueue(mint("t1", ownerA, 5))
	require.NotNil(t, f.round(t), "mint block")

	// both validate against the same pre-group state, only one fits
	f.queue.Enqueue(transfer("t1", ownerA, ownerB, 4))
	f.queue.Enqueue(transfer("t1", ownerA, ownerB, 4))
	f.queue.Enqueue(burn("t1", ownerA, 1))
	block := f.round(t)
	require.NotNil(t, block, "transfer block")
	assert.Equal(t, 2, block.TxCount, "wrong settled count")

	token, err := f.store.Token("t1")
	require.Nil(t, err, "token")

	a := f.balance(t, "t1", ownerA)
	b := f.balance(t, "t1", ownerB)
	assert.Equal(t, uint64(0), a, "wrong balance A")
	assert.Equal(t, uint64(4), b, "wrong balance B")
	assert.Equal(t, token.Circulating(), a+b, "supply not conserved")
	assert.Equal(t, uint64(1), token.TotalBurned, "wrong total burned")

	stats := f.producer.Stats()
	assert.Equal(t, uint64(2), stats.Blocks, "wrong block count")
	assert.Equal(t, uint64(3), stats.Settled, "wrong settled count")
	assert.Equal(t, uint64(1), stats.Dropped, "wrong dropped count")
}

func TestUpdateObjectByController(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	f.queue.Enqueue(update(t, f.controller, "t1", "m02", "m01", 2))
	require.NotNil(t, f.round(t), "no block")

	token, err := f.store.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, "m02", token.CurrentObjectCid, "wrong cid")
	assert.Equal(t, int64(2), token.CurrentVersion, "wrong version")
	require.Equal(t, 2, len(token.ObjectVersions), "wrong version history")
	assert.Equal(t, "m01", token.ObjectVersions[1].PreviousAssetCid, "wrong previous cid")
	assert.Equal(t, f.controller.Address, token.ObjectVersions[1].CommittedByAddress, "wrong committer")
}

func TestUpdateObjectByNonController(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	other, err := identity.NewKeyPair()
	require.Nil(t, err, "key")

	f.queue.Enqueue(update(t, other, "t1", "m02", "m01", 2))
	assert.Nil(t, f.round(t), "block for non controller update")

	token, err := f.store.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, "m01", token.CurrentObjectCid, "cid changed")
	assert.Equal(t, int64(1), token.CurrentVersion, "version changed")
}

func TestUpdateObjectWhenFrozen(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)
	require.Nil(t, f.store.Freeze("t1", f.controller.Address), "freeze")

	f.queue.Enqueue(update(t, f.controller, "t1", "m02", "m01", 2))
	assert.Nil(t, f.round(t), "block for frozen update")

	token, err := f.store.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, "m01", token.CurrentObjectCid, "cid changed")
	assert.Equal(t, int64(1), token.CurrentVersion, "version changed")
}

func TestCompetingUpdatesAbortRound(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	first := update(t, f.controller, "t1", "m02", "m01", 2)
	second := update(t, f.controller, "t1", "m03", "m01", 2)
	f.queue.Enqueue(mint("t1", ownerA, 1))
	f.queue.Enqueue(first)
	f.queue.Enqueue(second)

	block, err := f.producer.Round()
	assert.Equal(t, fault.ObjectPreconditionFailed, err, "wrong round error")
	require.NotNil(t, block, "applied transactions not sealed")
	assert.Equal(t, 2, block.TxCount, "wrong settled count")

	_, err = f.store.Transaction(second.Id)
	assert.Equal(t, fault.TransactionNotFound, err, "losing update settled")

	token, err := f.store.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, "m02", token.CurrentObjectCid, "wrong winner")
}

func TestChainIntegrity(t *testing.T) {
	key, err := identity.NewKeyPair()
	require.Nil(t, err, "authority key")

	f := setup(t, nil)
	signed := blockproducer.New(logger.New("producer"), f.queue, engine.New(logger.New("engine"), f.store), f.store, authority.FromKeyPair(logger.New("authority"), key), time.Second, 2)
	f.token(t, "t1", 0, true)

	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release(queue)

	for i := 0; i < 3; i += 1 {
		f.queue.Enqueue(mint("t1", ownerA, 1))
		f.queue.Enqueue(mint("t1", ownerB, 1))
		f.queue.Enqueue(mint("t1", ownerB, 1))
	}
	blocks := []*record.Block{}
	for {
		block, err := signed.Round()
		require.Nil(t, err, "round")
		if nil == block {
			break
		}
		blocks = append(blocks, block)
	}
	require.Equal(t, 5, len(blocks), "wrong block count")

	for i, block := range blocks {
		assert.Equal(t, uint64(i+1), block.Index, "wrong index")
		assert.Equal(t, block.ComputeHash(), block.Hash, "hash does not recompute")
		assert.Equal(t, key.PublicKeyPEM, block.ProducerPublicKeyPem, "wrong producer key")
		assert.True(t, identity.VerifyPEM(block.ProducerPublicKeyPem, block.Hash, block.ProducerSignatureBase64), "bad producer signature")
		if i > 0 {
			assert.Equal(t, blocks[i-1].Hash, block.PreviousHash, "chain does not link")
		}
	}

	report, err := f.store.VerifyChain()
	require.Nil(t, err, "verify")
	assert.True(t, report.Valid, "chain invalid: %s", report.Reason)
	assert.Equal(t, uint64(5), report.Blocks, "wrong verified count")

	select {
	case item := <-queue:
		assert.Equal(t, blockproducer.BlockCommand, item.Command, "wrong bus command")
	default:
		t.Error("no block on bus")
	}
}

func TestSignerFailureSealsUnsigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signer := authoritymocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(gomock.Any()).Return("", "", false, fault.InvalidPrivateKey).Times(1)

	f := setup(t, signer)
	f.token(t, "t1", 0, true)

	f.queue.Enqueue(mint("t1", ownerA, 1))
	block := f.round(t)
	require.NotNil(t, block, "no block")
	assert.Equal(t, "", block.ProducerSignatureBase64, "signature on failed sign")
}

type abortingSettler struct {
	inner blockproducer.Settler
	fail  string
}

func (s *abortingSettler) Validate(tx *record.Transaction) bool {
	return s.inner.Validate(tx)
}

func (s *abortingSettler) Apply(tx *record.Transaction) error {
	if tx.Id == s.fail {
		return fault.ObjectPreconditionFailed
	}
	return s.inner.Apply(tx)
}

func TestAbortKeepsEarlierGroups(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	m := mint("t1", ownerA, 5)
	tr := transfer("t1", ownerA, ownerB, 1)
	bu := burn("t1", ownerA, 1)
	settler := &abortingSettler{
		inner: engine.New(logger.New("engine"), f.store),
		fail:  tr.Id,
	}
	p := blockproducer.New(logger.New("producer"), f.queue, settler, f.store, nil, time.Second, 0)

	f.queue.Enqueue(m)
	f.queue.Enqueue(tr)
	f.queue.Enqueue(bu)

	block, err := p.Round()
	assert.Equal(t, fault.ObjectPreconditionFailed, err, "wrong error")
	require.NotNil(t, block, "no block")
	assert.Equal(t, 1, block.TxCount, "wrong settled count")
	assert.Equal(t, 0, f.queue.Len(), "dropped transactions requeued")
	assert.Equal(t, uint64(5), f.balance(t, "t1", ownerA), "burn applied after abort")
}

func TestRunStopsOnShutdown(t *testing.T) {
	f := setup(t, nil)
	f.token(t, "t1", 0, true)

	p := blockproducer.New(logger.New("producer"), f.queue, engine.New(logger.New("engine"), f.store), f.store, nil, 10*time.Millisecond, 0)
	f.queue.Enqueue(mint("t1", ownerA, 1))

	shutdown := make(chan struct{})
	done := make(chan struct{})
	go func() {
		p.Run(nil, shutdown)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		height, err := f.store.Height()
		return nil == err && 1 == height
	}, 5*time.Second, 10*time.Millisecond, "no block produced")

	close(shutdown)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("producer did not stop")
	}
}
