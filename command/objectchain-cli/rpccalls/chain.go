// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/chain"
	"github.com/bitmark-inc/objectchaind/service"
)

// Chain - latest blocks and totals
func (client *Client) Chain(count int) (*service.ChainReply, error) {
	var reply service.ChainReply
	err := client.client.Call("Chain.List", &chain.ListArguments{Count: count}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Block - one block by index
func (client *Client) Block(index uint64) (*record.Block, error) {
	var reply record.Block
	err := client.client.Call("Chain.Block", &chain.BlockArguments{Index: index}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// VerifyChain - full chain scan on the server
func (client *Client) VerifyChain() (*ledger.ChainReport, error) {
	var reply ledger.ChainReport
	err := client.client.Call("Chain.Verify", &chain.VerifyArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - request status from objectchaind
func (client *Client) Info() (*service.InfoReply, error) {
	var reply service.InfoReply
	err := client.client.Call("Chain.Info", &chain.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
