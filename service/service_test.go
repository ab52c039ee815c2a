// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/objectchaind/canonical"
	"github.com/bitmark-inc/objectchaind/content"
	contentmocks "github.com/bitmark-inc/objectchaind/content/mocks"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	ledgermocks "github.com/bitmark-inc/objectchaind/ledger/mocks"
	"github.com/bitmark-inc/objectchaind/record"
	reservoirmocks "github.com/bitmark-inc/objectchaind/reservoir/mocks"
	"github.com/bitmark-inc/objectchaind/service"
)

const (
	testingDirName = "testing"
	ownerB         = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestMain(m *testing.M) {
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

type fixture struct {
	store   *ledgermocks.MockStore
	queue   *reservoirmocks.MockReservoir
	content *contentmocks.MockStore
	service *service.Service
}

func setup(t *testing.T) *fixture {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	f := &fixture{
		store:   ledgermocks.NewMockStore(ctl),
		queue:   reservoirmocks.NewMockReservoir(ctl),
		content: contentmocks.NewMockStore(ctl),
	}
	f.service = service.New(logger.New("service"), f.store, f.queue, f.content, "1.0")
	return f
}

func keyPair(t *testing.T) *identity.KeyPair {
	key, err := identity.NewKeyPair()
	require.Nil(t, err, "key pair")
	return key
}

func stored(fileName string, data []byte) *record.StoredContent {
	return &record.StoredContent{
		Cid:      content.Cid(data),
		FileName: fileName,
		Size:     int64(len(data)),
	}
}

func TestSubmitMint(t *testing.T) {
	f := setup(t)

	_, err := f.service.SubmitMint(&service.MintRequest{TokenId: "t1", ToAddress: ownerB, Quantity: 0})
	assert.Equal(t, fault.InvalidQuantity, err, "zero quantity")

	_, err = f.service.SubmitMint(&service.MintRequest{TokenId: "t1", ToAddress: "nothex", Quantity: 1})
	assert.Equal(t, fault.InvalidAddress, err, "bad address")

	f.store.EXPECT().Token("none").Return(nil, fault.TokenNotFound).Times(1)
	_, err = f.service.SubmitMint(&service.MintRequest{TokenId: "none", ToAddress: ownerB, Quantity: 1})
	assert.Equal(t, fault.TokenNotFound, err, "missing token")

	var queued *record.Transaction
	f.store.EXPECT().Token("t1").Return(&record.Token{TokenId: "t1"}, nil).Times(1)
	f.queue.EXPECT().Enqueue(gomock.Any()).Do(func(tx *record.Transaction) {
		queued = tx
	}).Times(1)

	reply, err := f.service.SubmitMint(&service.MintRequest{TokenId: "t1", ToAddress: ownerB, Quantity: 3})
	require.Nil(t, err, "mint")
	assert.True(t, reply.Queued, "not queued")
	require.NotNil(t, queued, "nothing enqueued")
	assert.Equal(t, reply.TxId, queued.Id, "wrong id")
	assert.Equal(t, 32, len(queued.Id), "wrong id length")
	assert.Equal(t, record.MintType, queued.Type, "wrong type")
	assert.Equal(t, record.MintAddress, queued.FromAddress, "wrong from")
	assert.Equal(t, int64(3), queued.Quantity, "wrong quantity")
	assert.NotEqual(t, int64(0), queued.CreatedAt, "no creation time")
}

func TestSubmitTransfer(t *testing.T) {
	f := setup(t)
	sender := keyPair(t)
	other := keyPair(t)

	ts := time.Now().Unix() * 1000
	message := identity.TransferMessage("t1", sender.Address, ownerB, 2, ts)
	signature, err := identity.Sign(sender.PrivateKey, message)
	require.Nil(t, err, "sign")

	request := service.TransferRequest{
		TokenId:         "t1",
		FromAddress:     sender.Address,
		ToAddress:       ownerB,
		Quantity:        2,
		PublicKeyPem:    sender.PublicKeyPEM,
		SignatureBase64: signature,
		Ts:              ts,
	}

	bad := request
	bad.Quantity = 3
	_, err = f.service.SubmitTransfer(&bad)
	assert.Equal(t, fault.InvalidSignature, err, "altered quantity accepted")

	negative := request
	negative.Quantity = -1
	_, err = f.service.SubmitTransfer(&negative)
	assert.Equal(t, fault.InvalidQuantity, err, "negative quantity accepted")

	// valid signature by a key that is not the sender
	otherSignature, err := identity.Sign(other.PrivateKey, message)
	require.Nil(t, err, "sign")
	mismatch := request
	mismatch.PublicKeyPem = other.PublicKeyPEM
	mismatch.SignatureBase64 = otherSignature
	_, err = f.service.SubmitTransfer(&mismatch)
	assert.Equal(t, fault.SignerMismatch, err, "wrong signer accepted")

	f.queue.EXPECT().Enqueue(gomock.Any()).Do(func(tx *record.Transaction) {
		assert.Equal(t, record.TransferType, tx.Type, "wrong type")
		assert.Equal(t, sender.Address, tx.FromAddress, "wrong from")
		assert.Equal(t, ownerB, tx.ToAddress, "wrong to")
		assert.Equal(t, ts, tx.TsMs, "wrong client timestamp")
	}).Times(1)

	reply, err := f.service.SubmitTransfer(&request)
	require.Nil(t, err, "transfer")
	assert.True(t, reply.Queued, "not queued")
}

func TestSubmitBurn(t *testing.T) {
	f := setup(t)
	owner := keyPair(t)

	message := identity.BurnMessage("t1", owner.Address, 1, 99)
	signature, err := identity.Sign(owner.PrivateKey, message)
	require.Nil(t, err, "sign")

	f.queue.EXPECT().Enqueue(gomock.Any()).Do(func(tx *record.Transaction) {
		assert.Equal(t, record.BurnType, tx.Type, "wrong type")
		assert.Equal(t, owner.Address, tx.FromAddress, "wrong owner")
		assert.Equal(t, record.BurnAddress, tx.ToAddress, "wrong to")
	}).Times(1)

	_, err = f.service.SubmitBurn(&service.BurnRequest{
		TokenId:         "t1",
		OwnerAddress:    owner.Address,
		Quantity:        1,
		PublicKeyPem:    owner.PublicKeyPEM,
		SignatureBase64: signature,
		Ts:              99,
	})
	assert.Nil(t, err, "burn")

	_, err = f.service.SubmitBurn(&service.BurnRequest{
		TokenId:      "t1",
		OwnerAddress: owner.Address,
		Quantity:     1,
		Ts:           99,
	})
	assert.Equal(t, fault.MissingParameters, err, "unsigned burn accepted")
}

func TestSubmitUpdateObject(t *testing.T) {
	f := setup(t)
	controller := keyPair(t)

	objectJson := `{"b": 2, "a": [1, 2]}`
	canonicalJSON, err := canonical.Canonicalize(objectJson)
	require.Nil(t, err, "canonical")
	sha := canonical.Sha256Hex(canonicalJSON)
	cid := content.Cid([]byte(canonicalJSON))

	message := identity.UpdateObjectMessage("t1", cid, "m01", 2, sha, 1234)
	signature, err := identity.Sign(controller.PrivateKey, message)
	require.Nil(t, err, "sign")

	f.content.EXPECT().Put("t1-v2.json", []byte(canonicalJSON)).Return(stored("t1-v2.json", []byte(canonicalJSON)), nil).Times(1)
	f.queue.EXPECT().Enqueue(gomock.Any()).Do(func(tx *record.Transaction) {
		assert.Equal(t, record.UpdateObjectType, tx.Type, "wrong type")
		assert.Equal(t, cid, tx.NewObjectCid, "wrong new cid")
		assert.Equal(t, "m01", tx.PreviousObjectCid, "wrong previous cid")
		assert.Equal(t, int64(2), tx.NewVersionNumber, "wrong version")
		assert.Equal(t, sha, tx.JsonSha256, "wrong sha")
		assert.Equal(t, controller.Address, tx.FromAddress, "wrong signer")
	}).Times(1)

	reply, err := f.service.SubmitUpdateObject(&service.UpdateObjectRequest{
		TokenId:           "t1",
		PublicKeyPem:      controller.PublicKeyPEM,
		SignatureBase64:   signature,
		NewObjectJson:     objectJson,
		PreviousObjectCid: "m01",
		NewVersion:        2,
		Ts:                1234,
	})
	require.Nil(t, err, "update")
	assert.Equal(t, cid, reply.NewCid, "wrong reply cid")
	assert.Equal(t, sha, reply.Sha, "wrong reply sha")

	_, err = f.service.SubmitUpdateObject(&service.UpdateObjectRequest{
		TokenId:           "t1",
		PublicKeyPem:      controller.PublicKeyPEM,
		SignatureBase64:   signature,
		NewObjectJson:     `{"b": 3}`,
		PreviousObjectCid: "m01",
		NewVersion:        2,
		Ts:                1234,
	})
	assert.Equal(t, fault.InvalidSignature, err, "signature over other object accepted")

	_, err = f.service.SubmitUpdateObject(&service.UpdateObjectRequest{
		TokenId:           "t1",
		PublicKeyPem:      controller.PublicKeyPEM,
		SignatureBase64:   signature,
		NewObjectJson:     `{"b": `,
		PreviousObjectCid: "m01",
		NewVersion:        2,
	})
	assert.Equal(t, fault.InvalidJSON, err, "bad json accepted")
}

func TestCreateToken(t *testing.T) {
	f := setup(t)
	controller := keyPair(t)

	objectJson := `{"name":"x","n":1}`
	canonicalJSON, err := canonical.Canonicalize(objectJson)
	require.Nil(t, err, "canonical")

	f.store.EXPECT().Token("t1").Return(nil, fault.TokenNotFound).Times(1)
	f.content.EXPECT().Put("t1-v1.json", []byte(canonicalJSON)).Return(stored("t1-v1.json", []byte(canonicalJSON)), nil).Times(1)
	f.store.EXPECT().InsertToken(gomock.Any()).DoAndReturn(func(token *record.Token) error {
		assert.Equal(t, int64(1), token.CurrentVersion, "wrong version")
		assert.Equal(t, controller.Address, token.ObjectControllerAddress, "wrong controller")
		assert.False(t, token.Transferable, "transferable flag ignored")
		require.Equal(t, 1, len(token.ObjectVersions), "wrong history")
		assert.Equal(t, "", token.ObjectVersions[0].PreviousAssetCid, "first version has previous")
		return nil
	}).Times(1)

	transferable := false
	reply, err := f.service.CreateToken(&service.CreateTokenRequest{
		TokenId:                "t1",
		Name:                   "one",
		MaxSupply:              10,
		Transferable:           &transferable,
		ControllerPublicKeyPem: controller.PublicKeyPEM,
		ObjectJson:             objectJson,
	})
	require.Nil(t, err, "create")
	assert.Equal(t, "t1", reply.TokenId, "wrong id")
	assert.Equal(t, content.Cid([]byte(canonicalJSON)), reply.ObjectCid, "wrong cid")
	assert.Equal(t, canonical.Sha256Hex(canonicalJSON), reply.Sha, "wrong sha")
	assert.Equal(t, controller.Address, reply.ControllerAddress, "wrong controller")

	f.store.EXPECT().Token("t1").Return(&record.Token{TokenId: "t1"}, nil).Times(1)
	_, err = f.service.CreateToken(&service.CreateTokenRequest{
		TokenId:                "t1",
		ControllerPublicKeyPem: controller.PublicKeyPEM,
		ObjectJson:             objectJson,
	})
	assert.Equal(t, fault.TokenAlreadyExists, err, "duplicate accepted")
}

func TestCreateTokenAssignsId(t *testing.T) {
	f := setup(t)
	controller := keyPair(t)

	f.content.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(fileName string, data []byte) (*record.StoredContent, error) {
		return stored(fileName, data), nil
	}).Times(1)
	f.store.EXPECT().InsertToken(gomock.Any()).DoAndReturn(func(token *record.Token) error {
		assert.True(t, token.Transferable, "default not transferable")
		return nil
	}).Times(1)

	reply, err := f.service.CreateToken(&service.CreateTokenRequest{
		ControllerPublicKeyPem: controller.PublicKeyPEM,
		ObjectJson:             `{}`,
	})
	require.Nil(t, err, "create")
	assert.Equal(t, 32, len(reply.TokenId), "wrong generated id")
}

// no store or content calls are expected for a rejected id
func TestCreateTokenRejectsInvalidId(t *testing.T) {
	f := setup(t)
	controller := keyPair(t)

	ids := []string{
		"a\x00" + ownerB,
		"has space",
		"slash/id",
		"caf\u00e9",
		strings.Repeat("x", record.MaximumTokenIdLength+1),
	}
	for _, id := range ids {
		_, err := f.service.CreateToken(&service.CreateTokenRequest{
			TokenId:                id,
			ControllerPublicKeyPem: controller.PublicKeyPEM,
			ObjectJson:             `{}`,
		})
		assert.Equal(t, fault.InvalidTokenId, err, "accepted token id: %q", id)
	}
}

func TestFreeze(t *testing.T) {
	f := setup(t)
	controller := keyPair(t)

	signature, err := identity.Sign(controller.PrivateKey, identity.FreezeMessage("t1", 5))
	require.Nil(t, err, "sign")

	f.store.EXPECT().Freeze("t1", controller.Address).Return(nil).Times(1)
	err = f.service.Freeze(&service.FreezeRequest{
		TokenId:                "t1",
		ControllerPublicKeyPem: controller.PublicKeyPEM,
		SignatureBase64:        signature,
		Ts:                     5,
	})
	assert.Nil(t, err, "freeze")

	err = f.service.Freeze(&service.FreezeRequest{
		TokenId:                "t1",
		ControllerPublicKeyPem: controller.PublicKeyPEM,
		SignatureBase64:        signature,
		Ts:                     6,
	})
	assert.Equal(t, fault.InvalidSignature, err, "wrong timestamp accepted")
}

func TestTokenInfo(t *testing.T) {
	f := setup(t)

	token := &record.Token{TokenId: "t1", TotalMinted: 10, TotalBurned: 3}
	f.store.EXPECT().Token("t1").Return(token, nil).Times(1)
	f.store.EXPECT().HolderCount("t1").Return(2, nil).Times(1)

	info, err := f.service.Token("t1")
	require.Nil(t, err, "token")
	assert.Equal(t, uint64(7), info.Circulating, "wrong circulating")
	assert.Equal(t, 2, info.Holders, "wrong holders")
}

func TestHoldersClampsPage(t *testing.T) {
	f := setup(t)

	f.store.EXPECT().Token("t1").Return(&record.Token{TokenId: "t1"}, nil).Times(1)
	f.store.EXPECT().Holders("t1", 1, ledger.MaximumPageSize).Return([]record.Holding{}, 0, nil).Times(1)

	reply, err := f.service.Holders("t1", 0, 1000)
	require.Nil(t, err, "holders")
	assert.Equal(t, 1, reply.Page, "wrong page")
	assert.Equal(t, ledger.MaximumPageSize, reply.PageSize, "wrong page size")
}

func TestTransactionsQuery(t *testing.T) {
	f := setup(t)

	_, err := f.service.Transactions(&service.TxQuery{Types: "Mint,Bogus"})
	assert.Equal(t, fault.InvalidTransactionType, err, "bad type accepted")

	filter := ledger.TxFilter{
		Owner: ownerB,
		Types: []record.TxType{record.TransferType, record.BurnType},
	}
	f.store.EXPECT().Transactions(filter, 2, ledger.DefaultPageSize).Return([]record.Transaction{}, 60, nil).Times(1)

	reply, err := f.service.Transactions(&service.TxQuery{Owner: ownerB, Types: "transfer, 3", Page: 2})
	require.Nil(t, err, "transactions")
	assert.Equal(t, 60, reply.Total, "wrong total")
}

func TestCalcCidDefaultName(t *testing.T) {
	f := setup(t)

	f.content.EXPECT().Put("object-v3.json", []byte(`{"a":1}`)).Return(stored("object-v3.json", []byte(`{"a":1}`)), nil).Times(1)

	reply, err := f.service.CalcCid(&service.CalcCidRequest{ObjectJson: `{ "a" : 1 }`, Version: 3})
	require.Nil(t, err, "calc cid")
	assert.Equal(t, `{"a":1}`, reply.Canonical, "wrong canonical")
	assert.Equal(t, content.Cid([]byte(`{"a":1}`)), reply.Cid, "wrong cid")
}

func TestNewWallet(t *testing.T) {
	f := setup(t)

	var saved *record.Wallet
	f.store.EXPECT().PutWallet(gomock.Any()).Do(func(w *record.Wallet) {
		saved = w
	}).Return(nil).Times(1)

	reply, err := f.service.NewWallet("mine")
	require.Nil(t, err, "new wallet")
	require.NotNil(t, saved, "wallet not saved")
	assert.Equal(t, reply.Address, saved.Address, "wrong saved address")
	assert.Equal(t, "mine", saved.Label, "wrong label")

	key, err := identity.KeyPairFromPEM(reply.PrivateKeyPem)
	require.Nil(t, err, "private key")
	assert.Equal(t, reply.Address, key.Address, "private key does not match")
}

func TestPortfolio(t *testing.T) {
	f := setup(t)

	f.store.EXPECT().OwnerHoldings(ownerB).Return([]record.Holding{
		{TokenId: "t1", OwnerAddress: ownerB, Balance: 4},
	}, nil).Times(1)
	f.store.EXPECT().Token("t1").Return(&record.Token{TokenId: "t1", Name: "one", TotalMinted: 9, CurrentVersion: 2}, nil).Times(1)

	reply, err := f.service.Portfolio(ownerB)
	require.Nil(t, err, "portfolio")
	require.Equal(t, 1, len(reply.Items), "wrong item count")
	assert.Equal(t, "one", reply.Items[0].Name, "wrong name")
	assert.Equal(t, uint64(4), reply.Items[0].Balance, "wrong balance")
	assert.Equal(t, uint64(9), reply.Items[0].Circulating, "wrong circulating")
}

func TestInfo(t *testing.T) {
	f := setup(t)

	f.store.EXPECT().Height().Return(uint64(7), nil).Times(1)
	f.store.EXPECT().TransactionCount().Return(uint64(21), nil).Times(1)
	f.queue.EXPECT().Counts().Return(uint64(30), uint64(25)).Times(1)
	f.queue.EXPECT().Len().Return(5).Times(1)

	info, err := f.service.Info()
	require.Nil(t, err, "info")
	assert.Equal(t, "1.0", info.Version, "wrong version")
	assert.Equal(t, uint64(7), info.Height, "wrong height")
	assert.Equal(t, uint64(21), info.Transactions, "wrong tx count")
	assert.Equal(t, 5, info.Queued, "wrong queue length")
}
