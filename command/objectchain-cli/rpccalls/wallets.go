// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/wallets"
	"github.com/bitmark-inc/objectchaind/service"
)

// NewWallet - server generated key pair
func (client *Client) NewWallet(label string) (*service.NewWalletReply, error) {
	var reply service.NewWalletReply
	err := client.client.Call("Wallets.New", &wallets.NewArguments{Label: label}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Wallet - stored wallet record
func (client *Client) Wallet(address string) (*record.Wallet, error) {
	var reply record.Wallet
	err := client.client.Call("Wallets.Get", &wallets.AddressArguments{Address: address}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Portfolio - all positive holdings of an address
func (client *Client) Portfolio(address string) (*service.PortfolioReply, error) {
	var reply service.PortfolioReply
	err := client.client.Call("Wallets.Portfolio", &wallets.AddressArguments{Address: address}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// History - one page of transactions involving an address
func (client *Client) History(address string, page int, pageSize int) (*service.TransactionsReply, error) {
	arguments := &wallets.HistoryArguments{
		Address:  address,
		Page:     page,
		PageSize: pageSize,
	}
	var reply service.TransactionsReply
	err := client.client.Call("Wallets.History", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
