// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/ratelimit"
	"github.com/bitmark-inc/objectchaind/service"
)

const (
	rateLimitWallets = 100
	rateBurstWallets = 50
)

// Wallets - an RPC entry for the address book
type Wallets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service service.Wallets
}

// NewArguments - optional label for a generated wallet
type NewArguments struct {
	Label string `json:"label"`
}

// AddressArguments - a wallet address
type AddressArguments struct {
	Address string `json:"address"`
}

// HistoryArguments - a page of transactions involving an address
type HistoryArguments struct {
	Address  string `json:"address"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

func New(log *logger.L, wallets service.Wallets) *Wallets {
	return &Wallets{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitWallets, rateBurstWallets),
		Service: wallets,
	}
}

// New - generate a key pair and record its address
func (w *Wallets) New(arguments *NewArguments, reply *service.NewWalletReply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	result, err := w.Service.NewWallet(arguments.Label)
	if nil != err {
		return err
	}
	w.Log.Infof("new wallet: %s", result.Address)
	*reply = *result
	return nil
}

// Get - a recorded wallet
func (w *Wallets) Get(arguments *AddressArguments, reply *record.Wallet) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}
	if "" == arguments.Address {
		return fault.MissingParameters
	}

	wallet, err := w.Service.Wallet(arguments.Address)
	if nil != err {
		return err
	}
	*reply = *wallet
	return nil
}

// Portfolio - positive holdings of an address
func (w *Wallets) Portfolio(arguments *AddressArguments, reply *service.PortfolioReply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}
	if "" == arguments.Address {
		return fault.MissingParameters
	}

	result, err := w.Service.Portfolio(arguments.Address)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// History - settled transactions involving an address
func (w *Wallets) History(arguments *HistoryArguments, reply *service.TransactionsReply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}
	if "" == arguments.Address {
		return fault.MissingParameters
	}

	result, err := w.Service.History(arguments.Address, arguments.Page, arguments.PageSize)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}
