// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/objectchaind/identity"
)

const minimumPasswordLength = 8

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		panic(err)
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		panic("No console")
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "objectchain-cli: ")

	return passwordConsole, 0, oldState
}

func promptNewPassword() (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("Set identity password(length >= 8): ")
	terminal.Restore(fd, state)
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", ErrInvalidPasswordLen
	}

	console, fd, state = getTerminal()
	verifyPassword, err := console.ReadPassword("Verify password: ")
	terminal.Restore(fd, state)
	if nil != err {
		return "", ErrPasswordMismatch
	}

	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}

	return password, nil
}

func promptPassword() (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("password: ")
	terminal.Restore(fd, state)
	if nil != err {
		return "", err
	}

	return password, nil
}

// password from the global option or a new one from the terminal
func newPassword(c *cli.Context) (string, error) {
	password := c.GlobalString("password")
	if "" == password {
		return promptNewPassword()
	}
	if len(password) < minimumPasswordLength {
		return "", ErrInvalidPasswordLen
	}
	return password, nil
}

// decrypt the selected identity, prompting if no password was given
func ownerKey(c *cli.Context, m *metadata) (*identity.KeyPair, error) {
	name, err := checkIdentityName(c.GlobalString("identity"), m.config)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	key, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  address: %s\n", name, key.Address)
	}
	return key, nil
}
