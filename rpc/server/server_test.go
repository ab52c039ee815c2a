// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/chain"
	"github.com/bitmark-inc/objectchaind/rpc/contents"
	"github.com/bitmark-inc/objectchaind/rpc/fixtures"
	"github.com/bitmark-inc/objectchaind/rpc/server"
	"github.com/bitmark-inc/objectchaind/rpc/tokens"
	"github.com/bitmark-inc/objectchaind/rpc/transactions"
	"github.com/bitmark-inc/objectchaind/rpc/wallets"
	"github.com/bitmark-inc/objectchaind/service"
	"github.com/bitmark-inc/objectchaind/service/mocks"
)

type allMocks struct {
	*mocks.MockTokens
	*mocks.MockTransactions
	*mocks.MockContents
	*mocks.MockChain
	*mocks.MockWallets
}

// EXPECT is ambiguous on the embedded mocks, so Service is satisfied
// only through the promoted interface methods
var _ server.Service = allMocks{}

func setup(t *testing.T) (*gomock.Controller, allMocks, *rpc.Client) {
	ctl := gomock.NewController(t)
	m := allMocks{
		MockTokens:       mocks.NewMockTokens(ctl),
		MockTransactions: mocks.NewMockTransactions(ctl),
		MockContents:     mocks.NewMockContents(ctl),
		MockChain:        mocks.NewMockChain(ctl),
		MockWallets:      mocks.NewMockWallets(ctl),
	}

	s := server.Create(logger.New(fixtures.LogCategory), m)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	go s.Accept(l)

	conn, err := net.Dial("tcp", l.Addr().String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := rpc.NewClient(conn)
	t.Cleanup(func() { _ = client.Close() })

	return ctl, m, client
}

// following tests make sure proper methods are registered to server
// every error comes from the mocked service so a wrong registration
// shows up as an unknown method

func TestTokensRegistered(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, client := setup(t)
	defer ctl.Finish()

	m.MockTokens.EXPECT().Token("song").Return(nil, fault.TokenNotFound).Times(1)
	m.MockTokens.EXPECT().SubmitMint(gomock.Any()).Return(nil, fault.InvalidQuantity).Times(1)

	var info service.TokenInfo
	err := client.Call("Tokens.Get", &tokens.GetArguments{TokenId: "song"}, &info)
	assert.NotNil(t, err, "wrong Tokens.Get")
	assert.Equal(t, fault.TokenNotFound.Error(), err.Error(), "wrong reply")

	var submit service.SubmitReply
	err = client.Call("Tokens.Mint", &service.MintRequest{TokenId: "song"}, &submit)
	assert.NotNil(t, err, "wrong Tokens.Mint")
	assert.Equal(t, fault.InvalidQuantity.Error(), err.Error(), "wrong reply")
}

func TestTransactionsRegistered(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, client := setup(t)
	defer ctl.Finish()

	m.MockTransactions.EXPECT().Transaction("t1").Return(nil, fault.TransactionNotFound).Times(1)

	var tx record.Transaction
	err := client.Call("Transactions.Get", &transactions.GetArguments{Id: "t1"}, &tx)
	assert.NotNil(t, err, "wrong Transactions.Get")
	assert.Equal(t, fault.TransactionNotFound.Error(), err.Error(), "wrong reply")
}

func TestContentsRegistered(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, client := setup(t)
	defer ctl.Finish()

	m.MockContents.EXPECT().GetContent("c1").Return(nil, nil, fault.ContentNotFound).Times(1)

	var reply contents.GetReply
	err := client.Call("Contents.Get", &contents.GetArguments{Cid: "c1"}, &reply)
	assert.NotNil(t, err, "wrong Contents.Get")
	assert.Equal(t, fault.ContentNotFound.Error(), err.Error(), "wrong reply")
}

func TestChainRegistered(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, client := setup(t)
	defer ctl.Finish()

	m.MockChain.EXPECT().Block(uint64(9)).Return(nil, fault.BlockNotFound).Times(1)
	m.MockChain.EXPECT().VerifyChain().Return(&ledger.ChainReport{Blocks: 2, Valid: true}, nil).Times(1)

	var block record.Block
	err := client.Call("Chain.Block", &chain.BlockArguments{Index: 9}, &block)
	assert.NotNil(t, err, "wrong Chain.Block")
	assert.Equal(t, fault.BlockNotFound.Error(), err.Error(), "wrong reply")

	var report ledger.ChainReport
	err = client.Call("Chain.Verify", &chain.VerifyArguments{}, &report)
	assert.Nil(t, err, "wrong Chain.Verify")
	assert.True(t, report.Valid, "wrong report")
}

func TestWalletsRegistered(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, client := setup(t)
	defer ctl.Finish()

	m.MockWallets.EXPECT().Wallet("abc").Return(nil, fault.WalletNotFound).Times(1)

	var wallet record.Wallet
	err := client.Call("Wallets.Get", &wallets.AddressArguments{Address: "abc"}, &wallet)
	assert.NotNil(t, err, "wrong Wallets.Get")
	assert.Equal(t, fault.WalletNotFound.Error(), err.Error(), "wrong reply")
}
