// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/objectchaind/canonical"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
)

// maximum blocks in a chain listing
const maximumChainCount = 100

// Transaction - a settled transaction, queued ones are not visible
func (s *Service) Transaction(id string) (*record.Transaction, error) {
	return s.store.Transaction(id)
}

// Transactions - filtered settled log, newest first
func (s *Service) Transactions(query *TxQuery) (*TransactionsReply, error) {
	filter := ledger.TxFilter{
		Owner:   query.Owner,
		TokenId: query.TokenId,
		From:    query.From,
		To:      query.To,
	}
	if "" != strings.TrimSpace(query.Types) {
		types, err := record.ParseTxTypes(query.Types)
		if nil != err {
			return nil, err
		}
		filter.Types = types
	}
	return s.transactions(filter, query.Page, query.PageSize)
}

func (s *Service) transactions(filter ledger.TxFilter, page int, pageSize int) (*TransactionsReply, error) {
	page, pageSize = ledger.ClampPage(page, pageSize)
	items, total, err := s.store.Transactions(filter, page, pageSize)
	if nil != err {
		return nil, err
	}
	return &TransactionsReply{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    items,
	}, nil
}

// CalcCid - canonicalize and store an object so a client can sign it
func (s *Service) CalcCid(request *CalcCidRequest) (*CalcCidReply, error) {
	canonicalJSON, err := canonical.Canonicalize(request.ObjectJson)
	if nil != err {
		return nil, err
	}

	fileName := request.FileName
	if "" == strings.TrimSpace(fileName) {
		fileName = fmt.Sprintf("object-v%d.json", request.Version)
	}

	stored, err := s.content.Put(fileName, []byte(canonicalJSON))
	if nil != err {
		return nil, err
	}
	return &CalcCidReply{
		Cid:       stored.Cid,
		Sha:       canonical.Sha256Hex(canonicalJSON),
		Canonical: canonicalJSON,
	}, nil
}

// PutContent - store an uploaded file
func (s *Service) PutContent(fileName string, data []byte) (*record.StoredContent, error) {
	return s.content.Put(fileName, data)
}

// GetContent - bytes and index record of a cid
func (s *Service) GetContent(cid string) ([]byte, *record.StoredContent, error) {
	info, err := s.content.Info(cid)
	if nil != err {
		return nil, nil, err
	}
	data, err := s.content.Get(cid)
	if nil != err {
		return nil, nil, err
	}
	return data, info, nil
}

// NewWallet - generate a key pair and remember only its public half
func (s *Service) NewWallet(label string) (*NewWalletReply, error) {
	key, err := identity.NewKeyPair()
	if nil != err {
		return nil, err
	}
	wallet := &record.Wallet{
		Address:      key.Address,
		PublicKeyPem: key.PublicKeyPEM,
		Label:        label,
		CreatedAt:    s.nowMs(),
	}
	err = s.store.PutWallet(wallet)
	if nil != err {
		return nil, err
	}
	return &NewWalletReply{
		Address:       key.Address,
		Label:         label,
		PublicKeyPem:  key.PublicKeyPEM,
		PrivateKeyPem: key.PrivateKeyPEM,
	}, nil
}

// Wallet - a stored wallet
func (s *Service) Wallet(address string) (*record.Wallet, error) {
	return s.store.Wallet(address)
}

// Portfolio - positive holdings joined with token details
func (s *Service) Portfolio(address string) (*PortfolioReply, error) {
	if !identity.ValidAddress(address) {
		return nil, fault.InvalidAddress
	}
	holdings, err := s.store.OwnerHoldings(address)
	if nil != err {
		return nil, err
	}

	items := make([]PortfolioItem, 0, len(holdings))
	for _, h := range holdings {
		item := PortfolioItem{
			TokenId: h.TokenId,
			Balance: h.Balance,
		}
		token, err := s.store.Token(h.TokenId)
		if nil == err {
			item.Name = token.Name
			item.Description = token.Description
			item.CurrentObjectCid = token.CurrentObjectCid
			item.CurrentVersion = token.CurrentVersion
			item.MaxSupply = token.MaxSupply
			item.Circulating = token.Circulating()
		} else if fault.TokenNotFound != err {
			return nil, err
		}
		items = append(items, item)
	}
	return &PortfolioReply{
		Address: address,
		Items:   items,
	}, nil
}

// History - settled transactions sent or received by an address
func (s *Service) History(address string, page int, pageSize int) (*TransactionsReply, error) {
	if !identity.ValidAddress(address) {
		return nil, fault.InvalidAddress
	}
	return s.transactions(ledger.TxFilter{Owner: address}, page, pageSize)
}

// Chain - newest blocks first with chain totals
func (s *Service) Chain(count int) (*ChainReply, error) {
	if count <= 0 || count > maximumChainCount {
		count = maximumChainCount
	}
	blocks, err := s.store.LatestBlocks(count)
	if nil != err {
		return nil, err
	}
	height, err := s.store.Height()
	if nil != err {
		return nil, err
	}
	txCount, err := s.store.TransactionCount()
	if nil != err {
		return nil, err
	}
	return &ChainReply{
		Blocks:  blocks,
		Count:   height,
		TxCount: txCount,
	}, nil
}

// Block - a single block by index
func (s *Service) Block(index uint64) (*record.Block, error) {
	return s.store.Block(index)
}

// VerifyChain - recompute hashes, links and merkle roots
func (s *Service) VerifyChain() (*ledger.ChainReport, error) {
	return s.store.VerifyChain()
}

// Info - node state
func (s *Service) Info() (*InfoReply, error) {
	height, err := s.store.Height()
	if nil != err {
		return nil, err
	}
	txCount, err := s.store.TransactionCount()
	if nil != err {
		return nil, err
	}
	enqueued, drained := s.queue.Counts()
	return &InfoReply{
		Version:      s.version,
		Uptime:       time.Since(s.start).Round(time.Second).String(),
		Queued:       s.queue.Len(),
		Enqueued:     enqueued,
		Drained:      drained,
		Height:       height,
		Transactions: txCount,
	}, nil
}
