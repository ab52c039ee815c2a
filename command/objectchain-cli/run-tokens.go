// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/objectchaind/command/objectchain-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	connect, err := checkConnect(m.connect)
	if nil != err {
		return nil, err
	}
	return rpccalls.NewClient(connect, m.verbose, m.e)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// blank lets the server assign an id
	tokenId := strings.TrimSpace(c.String("token"))

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	object, err := checkObject(c.String("object"), c.String("object-file"))
	if nil != err {
		return err
	}

	controller, err := ownerKey(c, m)
	if nil != err {
		return err
	}

	data := &rpccalls.CreateTokenData{
		Controller:   controller,
		TokenId:      tokenId,
		Name:         name,
		Description:  c.String("description"),
		MaxSupply:    c.Uint64("max-supply"),
		Transferable: !c.Bool("non-transferable"),
		ObjectJson:   object,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
		fmt.Fprintf(m.e, "max supply: %d\n", data.MaxSupply)
		fmt.Fprintf(m.e, "transferable: %t\n", data.Transferable)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateToken(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runFreeze(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	controller, err := ownerKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Freeze(controller, tokenId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runToken(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Token(tokenId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runVersions(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Versions(tokenId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runHolders(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Holders(tokenId, c.Int("page"), c.Int("size"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	to, err := checkAddress(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	quantity, err := checkQuantity(c.Int64("quantity"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "quantity: %d\n", quantity)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(tokenId, to, quantity)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	printQueued(m.e, response.TxId)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	to, err := checkAddress(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	quantity, err := checkQuantity(c.Int64("quantity"))
	if nil != err {
		return err
	}

	owner, err := ownerKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "sender: %s\n", owner.Address)
		fmt.Fprintf(m.e, "quantity: %d\n", quantity)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(owner, tokenId, to, quantity)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	printQueued(m.e, response.TxId)
	return nil
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	quantity, err := checkQuantity(c.Int64("quantity"))
	if nil != err {
		return err
	}

	owner, err := ownerKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(owner, tokenId, quantity)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	printQueued(m.e, response.TxId)
	return nil
}

// the next version and previous cid are taken from the current token
// state, the ledger rejects the update if another one settles first
func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		return err
	}

	object, err := checkObject(c.String("object"), c.String("object-file"))
	if nil != err {
		return err
	}

	controller, err := ownerKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	versions, err := client.Versions(tokenId)
	if nil != err {
		return err
	}

	data := &rpccalls.UpdateObjectData{
		Controller:  controller,
		TokenId:     tokenId,
		ObjectJson:  object,
		PreviousCid: versions.CurrentObjectCid,
		NewVersion:  versions.CurrentVersion + 1,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
		fmt.Fprintf(m.e, "previous cid: %s\n", data.PreviousCid)
		fmt.Fprintf(m.e, "new version: %d\n", data.NewVersion)
	}

	response, err := client.UpdateObject(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	printQueued(m.e, response.TxId)
	return nil
}
