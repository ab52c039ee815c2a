// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/rpc/chain"
	"github.com/bitmark-inc/objectchaind/rpc/contents"
	"github.com/bitmark-inc/objectchaind/rpc/tokens"
	"github.com/bitmark-inc/objectchaind/rpc/transactions"
	"github.com/bitmark-inc/objectchaind/rpc/wallets"
	"github.com/bitmark-inc/objectchaind/service"
)

// Service - everything the RPC entries call
type Service interface {
	service.Tokens
	service.Transactions
	service.Contents
	service.Chain
	service.Wallets
}

// Create - an RPC server with all entries registered
func Create(log *logger.L, svc Service) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(tokens.New(log, svc))
	_ = server.Register(transactions.New(log, svc))
	_ = server.Register(contents.New(log, svc))
	_ = server.Register(chain.New(log, svc))
	_ = server.Register(wallets.New(log, svc))

	return server
}
