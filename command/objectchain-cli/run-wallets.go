// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runNewWallet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.NewWallet(c.String("label"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runWallet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddressOrDefault(c.String("address"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Wallet(address)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runPortfolio(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddressOrDefault(c.String("address"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Portfolio(address)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddressOrDefault(c.String("address"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.History(address, c.Int("page"), c.Int("size"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
