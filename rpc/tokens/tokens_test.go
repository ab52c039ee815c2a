// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/fixtures"
	"github.com/bitmark-inc/objectchaind/rpc/tokens"
	"github.com/bitmark-inc/objectchaind/service"
	"github.com/bitmark-inc/objectchaind/service/mocks"
)

func TestTokensCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)

	arg := service.CreateTokenRequest{
		TokenId:    "song",
		Name:       "a song",
		ObjectJson: `{"title":"x"}`,
	}
	s.EXPECT().CreateToken(&arg).Return(&service.CreateTokenReply{TokenId: "song", ObjectCid: "cid-1"}, nil).Times(1)

	var reply service.CreateTokenReply
	err := tk.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, "song", reply.TokenId, "wrong token id")
	assert.Equal(t, "cid-1", reply.ObjectCid, "wrong cid")
}

func TestTokensCreateError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)

	arg := service.CreateTokenRequest{TokenId: "song"}
	s.EXPECT().CreateToken(&arg).Return(nil, fault.TokenAlreadyExists).Times(1)

	var reply service.CreateTokenReply
	err := tk.Create(&arg, &reply)
	assert.Equal(t, fault.TokenAlreadyExists, err, "wrong error")
}

func TestTokensFreeze(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)

	arg := service.FreezeRequest{TokenId: "song"}
	s.EXPECT().Freeze(&arg).Return(nil).Times(1)

	var reply tokens.FreezeReply
	err := tk.Freeze(&arg, &reply)
	assert.Nil(t, err, "wrong Freeze")
	assert.True(t, reply.Frozen, "not frozen")
}

func TestTokensGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)

	info := &service.TokenInfo{
		Token:       &record.Token{TokenId: "song", TotalMinted: 10, TotalBurned: 3},
		Circulating: 7,
		Holders:     2,
	}
	s.EXPECT().Token("song").Return(info, nil).Times(1)

	var reply service.TokenInfo
	err := tk.Get(&tokens.GetArguments{TokenId: "song"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(7), reply.Circulating, "wrong circulating")
	assert.Equal(t, 2, reply.Holders, "wrong holders")
	assert.Equal(t, "song", reply.TokenId, "wrong token id")
}

func TestTokensVersionsAndHolders(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)

	s.EXPECT().Versions("song").Return(&service.VersionsReply{TokenId: "song", CurrentVersion: 2}, nil).Times(1)
	s.EXPECT().Holders("song", 1, 10).Return(&service.HoldersReply{TokenId: "song", Total: 4}, nil).Times(1)

	var versions service.VersionsReply
	err := tk.Versions(&tokens.GetArguments{TokenId: "song"}, &versions)
	assert.Nil(t, err, "wrong Versions")
	assert.Equal(t, int64(2), versions.CurrentVersion, "wrong version")

	var holders service.HoldersReply
	err = tk.Holders(&tokens.HoldersArguments{TokenId: "song", Page: 1, PageSize: 10}, &holders)
	assert.Nil(t, err, "wrong Holders")
	assert.Equal(t, 4, holders.Total, "wrong total")
}

func TestTokensSubmissions(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)

	mint := service.MintRequest{TokenId: "song", Quantity: 5}
	transfer := service.TransferRequest{TokenId: "song", Quantity: 1}
	burn := service.BurnRequest{TokenId: "song", Quantity: 1}
	update := service.UpdateObjectRequest{TokenId: "song", NewVersion: 2}

	s.EXPECT().SubmitMint(&mint).Return(&service.SubmitReply{Queued: true, TxId: "t1"}, nil).Times(1)
	s.EXPECT().SubmitTransfer(&transfer).Return(&service.SubmitReply{Queued: true, TxId: "t2"}, nil).Times(1)
	s.EXPECT().SubmitBurn(&burn).Return(nil, fault.InvalidSignature).Times(1)
	s.EXPECT().SubmitUpdateObject(&update).Return(&service.SubmitReply{Queued: true, TxId: "t4", NewCid: "cid-2"}, nil).Times(1)

	var reply service.SubmitReply
	err := tk.Mint(&mint, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, "t1", reply.TxId, "wrong tx id")

	reply = service.SubmitReply{}
	err = tk.Transfer(&transfer, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, "t2", reply.TxId, "wrong tx id")

	reply = service.SubmitReply{}
	err = tk.Burn(&burn, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong Burn error")
	assert.False(t, reply.Queued, "burn queued")

	reply = service.SubmitReply{}
	err = tk.UpdateObject(&update, &reply)
	assert.Nil(t, err, "wrong UpdateObject")
	assert.Equal(t, "cid-2", reply.NewCid, "wrong cid")
}

func TestTokensRateLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTokens(ctl)
	tk := tokens.New(logger.New(fixtures.LogCategory), s)
	tk.Limiter = rate.NewLimiter(0, 0)

	var reply service.TokenInfo
	err := tk.Get(&tokens.GetArguments{TokenId: "song"}, &reply)
	assert.Equal(t, fault.RateLimiting, err, "wrong error")
}
