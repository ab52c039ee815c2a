// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contents

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/rpc/ratelimit"
	"github.com/bitmark-inc/objectchaind/service"
)

const (
	rateLimitContents = 100
	rateBurstContents = 50

	// largest blob accepted through the JSON interface
	maximumContentSize = 4 * 1024 * 1024
)

// Contents - an RPC entry for content addressed storage
type Contents struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service service.Contents
}

// PutArguments - a blob to store, data is base64 in JSON
type PutArguments struct {
	FileName string `json:"fileName"`
	Data     []byte `json:"data"`
}

// GetArguments - a content id
type GetArguments struct {
	Cid string `json:"cid"`
}

// GetReply - blob and its index entry
type GetReply struct {
	Content *record.StoredContent `json:"content"`
	Data    []byte                `json:"data"`
}

func New(log *logger.L, contents service.Contents) *Contents {
	return &Contents{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitContents, rateBurstContents),
		Service: contents,
	}
}

// CalcCid - canonical form, hash and cid of an object
func (c *Contents) CalcCid(arguments *service.CalcCidRequest, reply *service.CalcCidReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	result, err := c.Service.CalcCid(arguments)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Put - store a blob
func (c *Contents) Put(arguments *PutArguments, reply *record.StoredContent) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if len(arguments.Data) > maximumContentSize {
		return fault.InvalidCount
	}

	c.Log.Infof("put: %q  size: %d", arguments.FileName, len(arguments.Data))

	stored, err := c.Service.PutContent(arguments.FileName, arguments.Data)
	if nil != err {
		return err
	}
	*reply = *stored
	return nil
}

// Get - fetch a blob by cid
func (c *Contents) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if "" == arguments.Cid {
		return fault.MissingParameters
	}

	data, stored, err := c.Service.GetContent(arguments.Cid)
	if nil != err {
		return err
	}
	reply.Content = stored
	reply.Data = data
	return nil
}
