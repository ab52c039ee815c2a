// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"path/filepath"

	"github.com/urfave/cli"
)

func runCalcCid(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	object, err := checkObject(c.String("object"), c.String("object-file"))
	if nil != err {
		return err
	}

	fileName := ""
	if f := c.String("object-file"); "" != f {
		fileName = filepath.Base(f)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CalcCid(object, fileName, c.Int64("version"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file := c.String("file")
	if "" == file {
		return ErrRequiredFile
	}

	data, err := ioutil.ReadFile(file)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.PutContent(filepath.Base(file), data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// raw data goes to the output file or stdout, the record goes to stderr
func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	cid := c.String("cid")
	if "" == cid {
		return ErrRequiredCid
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetContent(cid)
	if nil != err {
		return err
	}

	printJson(m.e, response.Content)

	output := c.String("output")
	if "" == output || "-" == output {
		_, err = m.w.Write(response.Data)
		return err
	}
	return ioutil.WriteFile(output, response.Data, 0644)
}
