// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/objectchaind/fault"
)

func runChain(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Chain(c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBlock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	index := c.Uint64("index")
	if 0 == index {
		return fault.MissingParameters
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Block(index)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VerifyChain()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	if !response.Valid {
		color.New(color.FgRed).Fprintf(m.e, "chain broken at block: %d  %s\n", response.BrokenAt, response.Reason)
		return fault.ChainBroken
	}
	color.New(color.FgGreen).Fprintf(m.e, "chain valid: %d blocks\n", response.Blocks)
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
