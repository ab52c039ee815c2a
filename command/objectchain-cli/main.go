// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/objectchaind/command/objectchain-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	connect string
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		color.New(color.FgRed, color.Bold).Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "objectchain-cli"
	app.Usage = "objectchaind token and object client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/objectchain-cli/objectchain-cli.json]",
		},
		cli.StringFlag{
			Name:  "connect, C",
			Value: "",
			Usage: " override objectchaind `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise objectchain-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*objectchaind host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key-file, k",
					Value: "",
					Usage: " use existing private key PEM `FILE`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key-file, k",
					Value: "",
					Usage: "+use existing private key PEM `FILE`",
				},
				cli.StringFlag{
					Name:  "public-key-file, P",
					Value: "",
					Usage: "+receive only identity from public key PEM `FILE`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "identities",
			Usage:  "list identities in the config file",
			Action: runIdentities,
		},
		{
			Name:   "password",
			Usage:  "change identity password",
			Action: runChangePassword,
		},
		{
			Name:   "generate",
			Usage:  "generate key pair, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create a token and its first object version",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " token `ID` [assigned by server]",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*token name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " token description `STRING`",
				},
				cli.Uint64Flag{
					Name:  "max-supply, m",
					Value: 0,
					Usage: " maximum supply `COUNT` [0 = unlimited]",
				},
				cli.BoolFlag{
					Name:  "non-transferable, N",
					Usage: " holders cannot transfer",
				},
				cli.StringFlag{
					Name:  "object, o",
					Value: "",
					Usage: "+object `JSON`",
				},
				cli.StringFlag{
					Name:  "object-file, f",
					Value: "",
					Usage: "+object JSON `FILE`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "freeze",
			Usage:     "permanently stop object updates",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runFreeze,
		},
		{
			Name:      "token",
			Usage:     "display token state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runToken,
		},
		{
			Name:      "versions",
			Usage:     "display object versions of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runVersions,
		},
		{
			Name:      "holders",
			Usage:     "list holders of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.IntFlag{
					Name:  "page",
					Value: 1,
					Usage: " page `NUMBER`",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 50,
					Usage: " page size `COUNT`",
				},
			},
			Action: runHolders,
		},
		{
			Name:      "mint",
			Usage:     "issue new supply to an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or `ADDRESS`",
				},
				cli.Int64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to mint `COUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "transfer balance to another address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or `ADDRESS`",
				},
				cli.Int64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to transfer `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "burn",
			Usage:     "destroy owned balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.Int64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to burn `COUNT`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "update",
			Usage:     "submit a new object version",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "object, o",
					Value: "",
					Usage: "+object `JSON`",
				},
				cli.StringFlag{
					Name:  "object-file, f",
					Value: "",
					Usage: "+object JSON `FILE`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "tx",
			Usage:     "display a settled transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `ID`",
				},
			},
			Action: runTransaction,
		},
		{
			Name:  "txs",
			Usage: "list settled transactions",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " token `ID`",
				},
				cli.StringFlag{
					Name:  "types",
					Value: "",
					Usage: " comma separated `TYPES`",
				},
				cli.Int64Flag{
					Name:  "from",
					Value: 0,
					Usage: " earliest timestamp `MILLISECONDS`",
				},
				cli.Int64Flag{
					Name:  "to",
					Value: 0,
					Usage: " latest timestamp `MILLISECONDS`",
				},
				cli.IntFlag{
					Name:  "page",
					Value: 1,
					Usage: " page `NUMBER`",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 50,
					Usage: " page size `COUNT`",
				},
			},
			Action: runTransactions,
		},
		{
			Name:   "tx-types",
			Usage:  "list transaction types in settlement order",
			Action: runTransactionTypes,
		},
		{
			Name:      "cid",
			Usage:     "compute the cid and hash of an object",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "object, o",
					Value: "",
					Usage: "+object `JSON`",
				},
				cli.StringFlag{
					Name:  "object-file, f",
					Value: "",
					Usage: "+object JSON `FILE`",
				},
				cli.Int64Flag{
					Name:  "version, V",
					Value: 1,
					Usage: " object `VERSION`",
				},
			},
			Action: runCalcCid,
		},
		{
			Name:      "put",
			Usage:     "store a file in the content store",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` to store",
				},
			},
			Action: runPut,
		},
		{
			Name:      "get",
			Usage:     "fetch stored content",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "cid",
					Value: "",
					Usage: "*content `CID`",
				},
				cli.StringFlag{
					Name:  "output, O",
					Value: "",
					Usage: " write data to `FILE` [stdout]",
				},
			},
			Action: runGet,
		},
		{
			Name:  "chain",
			Usage: "list latest blocks",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of blocks `COUNT`",
				},
			},
			Action: runChain,
		},
		{
			Name:      "block",
			Usage:     "display one block",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "index, n",
					Value: 0,
					Usage: "*block `INDEX`",
				},
			},
			Action: runBlock,
		},
		{
			Name:   "verify",
			Usage:  "verify the whole chain on the server",
			Action: runVerify,
		},
		{
			Name:   "info",
			Usage:  "display objectchaind status",
			Action: runInfo,
		},
		{
			Name:  "wallet-new",
			Usage: "create a server side wallet",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "label, l",
					Value: "",
					Usage: " wallet `LABEL`",
				},
			},
			Action: runNewWallet,
		},
		{
			Name:  "wallet",
			Usage: "display a server side wallet",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " identity name or `ADDRESS` [default identity]",
				},
			},
			Action: runWallet,
		},
		{
			Name:  "portfolio",
			Usage: "list token holdings of an address",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " identity name or `ADDRESS` [default identity]",
				},
			},
			Action: runPortfolio,
		},
		{
			Name:  "history",
			Usage: "list transactions of an address",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " identity name or `ADDRESS` [default identity]",
				},
				cli.IntFlag{
					Name:  "page",
					Value: 1,
					Usage: " page `NUMBER`",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 50,
					Usage: " page size `COUNT`",
				},
			},
			Action: runHistory,
		},
		{
			Name:  "version",
			Usage: "display objectchain-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			return nil
		}

		file, err := configurationFile(c.GlobalString("config"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			connect: c.GlobalString("connect"),
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}
			m.config = configuration
			if "" == m.connect {
				m.connect = configuration.Connect
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	return app
}

// explicit file or the default under XDG_CONFIG_HOME
func configurationFile(file string) (string, error) {
	if "" != file {
		return filepath.Abs(filepath.Clean(file))
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		home, err := os.UserHomeDir()
		if nil != err {
			return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		p = filepath.Join(home, ".config")
	}
	return filepath.Join(p, "objectchain-cli", "objectchain-cli.json"), nil
}
