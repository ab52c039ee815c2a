// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/objectchaind/command/objectchain-cli/configuration"
	"github.com/bitmark-inc/objectchaind/identity"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKeyPem, err := checkOptionalKeyFile(c.String("key-file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	password, err := newPassword(c)
	if nil != err {
		return err
	}

	m.config = configuration.New(connect)
	key, err := m.config.AddIdentity(name, description, privateKeyPem, password)
	if nil != err {
		return err
	}
	m.config.DefaultIdentity = name

	fmt.Fprintf(m.w, "address: %s\n", key.Address)

	// require configuration update
	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	keyFile := c.String("key-file")
	publicKeyFile := c.String("public-key-file")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "key file: %s\n", keyFile)
		fmt.Fprintf(m.e, "public key file: %s\n", publicKeyFile)
	}

	if "" == publicKeyFile {
		privateKeyPem, err := checkOptionalKeyFile(keyFile)
		if nil != err {
			return err
		}

		password, err := newPassword(c)
		if nil != err {
			return err
		}

		key, err := m.config.AddIdentity(name, description, privateKeyPem, password)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "address: %s\n", key.Address)

	} else if "" == keyFile {
		publicKeyPem, err := checkPublicKeyFile(publicKeyFile)
		if nil != err {
			return err
		}
		err = m.config.AddReceiveOnlyIdentity(name, description, publicKeyPem)
		if nil != err {
			return err
		}

	} else {
		return ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

func runIdentities(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	printJson(m.w, m.config.Info())
	return nil
}

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkIdentityName(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	oldPassword := c.GlobalString("password")
	if "" == oldPassword {
		oldPassword, err = promptPassword()
		if nil != err {
			return err
		}
	}

	// the new password always comes from the terminal
	password, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, oldPassword, password)
	if nil != err {
		return err
	}

	// require configuration update
	m.save = true
	return nil
}

// key pair output of generate
type generatedKey struct {
	Address       string `json:"address"`
	PublicKeyPem  string `json:"publicKeyPem"`
	PrivateKeyPem string `json:"privateKeyPem"`
}

func runGenerate(c *cli.Context) error {

	key, err := identity.NewKeyPair()
	if nil != err {
		return err
	}

	printJson(c.App.Writer, generatedKey{
		Address:       key.Address,
		PublicKeyPem:  key.PublicKeyPEM,
		PrivateKeyPem: key.PrivateKeyPEM,
	})
	return nil
}
