// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/content"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/reservoir"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Tokens - token creation, object control and supply submissions
type Tokens interface {
	CreateToken(request *CreateTokenRequest) (*CreateTokenReply, error)
	Freeze(request *FreezeRequest) error
	Token(tokenId string) (*TokenInfo, error)
	Versions(tokenId string) (*VersionsReply, error)
	Holders(tokenId string, page int, pageSize int) (*HoldersReply, error)

	SubmitMint(request *MintRequest) (*SubmitReply, error)
	SubmitTransfer(request *TransferRequest) (*SubmitReply, error)
	SubmitBurn(request *BurnRequest) (*SubmitReply, error)
	SubmitUpdateObject(request *UpdateObjectRequest) (*SubmitReply, error)
}

// Transactions - the settled transaction log
type Transactions interface {
	Transaction(id string) (*record.Transaction, error)
	Transactions(query *TxQuery) (*TransactionsReply, error)
}

// Contents - content addressed storage
type Contents interface {
	CalcCid(request *CalcCidRequest) (*CalcCidReply, error)
	PutContent(fileName string, data []byte) (*record.StoredContent, error)
	GetContent(cid string) ([]byte, *record.StoredContent, error)
}

// Chain - blocks and node state
type Chain interface {
	Chain(count int) (*ChainReply, error)
	Block(index uint64) (*record.Block, error)
	VerifyChain() (*ledger.ChainReport, error)
	Info() (*InfoReply, error)
}

// Wallets - server side address book
type Wallets interface {
	NewWallet(label string) (*NewWalletReply, error)
	Wallet(address string) (*record.Wallet, error)
	Portfolio(address string) (*PortfolioReply, error)
	History(address string, page int, pageSize int) (*TransactionsReply, error)
}

// Service - implements all of the client operations
type Service struct {
	log     *logger.L
	store   ledger.Store
	queue   reservoir.Reservoir
	content content.Store
	version string
	start   time.Time

	now func() time.Time
}

// New - create the service
func New(log *logger.L, store ledger.Store, queue reservoir.Reservoir, contentStore content.Store, version string) *Service {
	return &Service{
		log:     log,
		store:   store,
		queue:   queue,
		content: contentStore,
		version: version,
		start:   time.Now(),
		now:     time.Now,
	}
}

// current time in unix milliseconds
func (s *Service) nowMs() int64 {
	return s.now().UnixNano() / int64(time.Millisecond)
}
