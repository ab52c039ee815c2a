// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/ratelimit"
	"github.com/bitmark-inc/objectchaind/service"
)

const (
	rateLimitChain = 200
	rateBurstChain = 100
)

// Chain - an RPC entry for blocks and node state
type Chain struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service service.Chain
}

// ListArguments - how many of the latest blocks
type ListArguments struct {
	Count int `json:"count"`
}

// BlockArguments - a block index
type BlockArguments struct {
	Index uint64 `json:"index"`
}

// VerifyArguments - empty arguments for verify request
type VerifyArguments struct{}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

func New(log *logger.L, chain service.Chain) *Chain {
	return &Chain{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitChain, rateBurstChain),
		Service: chain,
	}
}

// List - latest blocks, newest first
func (c *Chain) List(arguments *ListArguments, reply *service.ChainReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	result, err := c.Service.Chain(arguments.Count)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Block - a single block
func (c *Chain) Block(arguments *BlockArguments, reply *record.Block) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	block, err := c.Service.Block(arguments.Index)
	if nil != err {
		return err
	}
	*reply = *block
	return nil
}

// Verify - recompute every block hash and link
func (c *Chain) Verify(_ *VerifyArguments, reply *ledger.ChainReport) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	report, err := c.Service.VerifyChain()
	if nil != err {
		return err
	}
	if !report.Valid {
		c.Log.Warnf("chain verify failed at block: %d  reason: %s", report.BrokenAt, report.Reason)
	}
	*reply = *report
	return nil
}

// Info - node state
func (c *Chain) Info(_ *InfoArguments, reply *service.InfoReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	info, err := c.Service.Info()
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}
