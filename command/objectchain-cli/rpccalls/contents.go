// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/contents"
	"github.com/bitmark-inc/objectchaind/service"
)

// CalcCid - server side preflight of an object update
func (client *Client) CalcCid(objectJson string, fileName string, version int64) (*service.CalcCidReply, error) {
	request := &service.CalcCidRequest{
		ObjectJson: objectJson,
		FileName:   fileName,
		Version:    version,
	}
	var reply service.CalcCidReply
	err := client.client.Call("Contents.CalcCid", request, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// PutContent - store bytes under their cid
func (client *Client) PutContent(fileName string, data []byte) (*record.StoredContent, error) {
	arguments := &contents.PutArguments{
		FileName: fileName,
		Data:     data,
	}
	var reply record.StoredContent
	err := client.client.Call("Contents.Put", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Put Reply", reply)

	return &reply, nil
}

// GetContent - fetch stored bytes and their record
func (client *Client) GetContent(cid string) (*contents.GetReply, error) {
	var reply contents.GetReply
	err := client.client.Call("Contents.Get", &contents.GetArguments{Cid: cid}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
