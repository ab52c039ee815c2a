// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/rpc/ratelimit"
	"github.com/bitmark-inc/objectchaind/service"
)

const (
	rateLimitTokens = 200
	rateBurstTokens = 100
)

// Tokens - an RPC entry for token and supply functions
type Tokens struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service service.Tokens
}

// GetArguments - a token id
type GetArguments struct {
	TokenId string `json:"tokenId"`
}

// HoldersArguments - a page of holders
type HoldersArguments struct {
	TokenId  string `json:"tokenId"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// FreezeReply - result of freeze
type FreezeReply struct {
	Frozen bool `json:"frozen"`
}

func New(log *logger.L, tokens service.Tokens) *Tokens {
	return &Tokens{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		Service: tokens,
	}
}

// Create - create a token with its first object version
func (t *Tokens) Create(arguments *service.CreateTokenRequest, reply *service.CreateTokenReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.CreateToken(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Freeze - stop object updates permanently
func (t *Tokens) Freeze(arguments *service.FreezeRequest, reply *FreezeReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	err := t.Service.Freeze(arguments)
	if nil != err {
		return err
	}
	reply.Frozen = true
	return nil
}

// Get - token snapshot
func (t *Tokens) Get(arguments *GetArguments, reply *service.TokenInfo) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.Token(arguments.TokenId)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Versions - object version history
func (t *Tokens) Versions(arguments *GetArguments, reply *service.VersionsReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.Versions(arguments.TokenId)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Holders - positive balances, largest first
func (t *Tokens) Holders(arguments *HoldersArguments, reply *service.HoldersReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.Holders(arguments.TokenId, arguments.Page, arguments.PageSize)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Mint - queue new supply
func (t *Tokens) Mint(arguments *service.MintRequest, reply *service.SubmitReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.SubmitMint(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Transfer - queue a signed transfer
func (t *Tokens) Transfer(arguments *service.TransferRequest, reply *service.SubmitReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.SubmitTransfer(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Burn - queue a signed burn
func (t *Tokens) Burn(arguments *service.BurnRequest, reply *service.SubmitReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.SubmitBurn(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// UpdateObject - queue a signed object update
func (t *Tokens) UpdateObject(arguments *service.UpdateObjectRequest, reply *service.SubmitReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.SubmitUpdateObject(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}
