// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/transactions"
	"github.com/bitmark-inc/objectchaind/service"
)

// Transaction - a settled transaction by id
func (client *Client) Transaction(id string) (*record.Transaction, error) {
	var reply record.Transaction
	err := client.client.Call("Transactions.Get", &transactions.GetArguments{Id: id}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transactions - one page of settled transactions
func (client *Client) Transactions(query *service.TxQuery) (*service.TransactionsReply, error) {
	client.printJson("Transactions Query", query)

	var reply service.TransactionsReply
	err := client.client.Call("Transactions.List", query, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransactionTypes - codes and names in settlement order
func (client *Client) TransactionTypes() (*transactions.TypesReply, error) {
	var reply transactions.TypesReply
	err := client.client.Call("Transactions.Types", &transactions.TypesArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
