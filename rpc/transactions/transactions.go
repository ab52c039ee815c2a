// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/ratelimit"
	"github.com/bitmark-inc/objectchaind/service"
)

const (
	rateLimitTransactions = 200
	rateBurstTransactions = 100
)

// Transactions - an RPC entry for the settled transaction log
type Transactions struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service service.Transactions
}

// GetArguments - a transaction id
type GetArguments struct {
	Id string `json:"id"`
}

// TypesArguments - empty arguments for types request
type TypesArguments struct{}

// TypeEntry - one transaction type
type TypeEntry struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

// TypesReply - all transaction types
type TypesReply struct {
	Types []TypeEntry `json:"types"`
}

func New(log *logger.L, transactions service.Transactions) *Transactions {
	return &Transactions{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransactions, rateBurstTransactions),
		Service: transactions,
	}
}

// Get - a settled transaction
//
// queued transactions are not found until their round has settled
func (t *Transactions) Get(arguments *GetArguments, reply *record.Transaction) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id {
		return fault.MissingParameters
	}

	tx, err := t.Service.Transaction(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *tx
	return nil
}

// List - filtered page of settled transactions, newest first
func (t *Transactions) List(arguments *service.TxQuery, reply *service.TransactionsReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	result, err := t.Service.Transactions(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Types - the known transaction types in settlement order
func (t *Transactions) Types(_ *TypesArguments, reply *TypesReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Types = make([]TypeEntry, 0, len(record.ProcessingOrder))
	for _, txType := range record.ProcessingOrder {
		reply.Types = append(reply.Types, TypeEntry{
			Value: int(txType),
			Name:  txType.String(),
		})
	}
	return nil
}
