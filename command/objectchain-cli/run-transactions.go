// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/objectchaind/service"
)

func runTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkTxId(c.String("txid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transaction(txId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransactions(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := ""
	if o := c.String("owner"); "" != o {
		address, err := checkAddress(o, m.config)
		if nil != err {
			return err
		}
		owner = address
	}

	query := &service.TxQuery{
		Owner:    owner,
		TokenId:  c.String("token"),
		Types:    c.String("types"),
		From:     c.Int64("from"),
		To:       c.Int64("to"),
		Page:     c.Int("page"),
		PageSize: c.Int("size"),
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transactions(query)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransactionTypes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransactionTypes()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
