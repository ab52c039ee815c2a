// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/objectchaind/record"
)

// MintRequest - authority issue of new supply
type MintRequest struct {
	TokenId   string `json:"tokenId"`
	ToAddress string `json:"toAddress"`
	Quantity  int64  `json:"quantity"`
}

// TransferRequest - signed move between addresses
type TransferRequest struct {
	TokenId         string `json:"tokenId"`
	FromAddress     string `json:"fromAddress"`
	ToAddress       string `json:"toAddress"`
	Quantity        int64  `json:"quantity"`
	PublicKeyPem    string `json:"publicKeyPem"`
	SignatureBase64 string `json:"signatureBase64"`
	Ts              int64  `json:"ts"`
}

// BurnRequest - signed destruction of supply
type BurnRequest struct {
	TokenId         string `json:"tokenId"`
	OwnerAddress    string `json:"ownerAddress"`
	Quantity        int64  `json:"quantity"`
	PublicKeyPem    string `json:"publicKeyPem"`
	SignatureBase64 string `json:"signatureBase64"`
	Ts              int64  `json:"ts"`
}

// UpdateObjectRequest - signed new version of the token object
type UpdateObjectRequest struct {
	TokenId           string `json:"tokenId"`
	PublicKeyPem      string `json:"publicKeyPem"`
	SignatureBase64   string `json:"signatureBase64"`
	NewObjectJson     string `json:"newObjectJson"`
	PreviousObjectCid string `json:"previousObjectCid"`
	NewVersion        int64  `json:"newVersion"`
	Ts                int64  `json:"ts"`
}

// SubmitReply - queue acceptance, not settlement
type SubmitReply struct {
	Queued bool   `json:"queued"`
	TxId   string `json:"txId"`
	NewCid string `json:"newCid,omitempty"`
	Sha    string `json:"sha,omitempty"`
}

// CreateTokenRequest - a new token and its first object version
type CreateTokenRequest struct {
	TokenId                string `json:"tokenId"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	MaxSupply              uint64 `json:"maxSupply"`
	Transferable           *bool  `json:"transferable"`
	ControllerPublicKeyPem string `json:"controllerPublicKeyPem"`
	ObjectJson             string `json:"objectJson"`
}

// CreateTokenReply - identity of the created token
type CreateTokenReply struct {
	TokenId           string `json:"tokenId"`
	ObjectCid         string `json:"objectCid"`
	ControllerAddress string `json:"controllerAddress"`
	Sha               string `json:"sha"`
}

// FreezeRequest - controller signed freeze
type FreezeRequest struct {
	TokenId                string `json:"tokenId"`
	ControllerPublicKeyPem string `json:"controllerPublicKeyPem"`
	SignatureBase64        string `json:"signatureBase64"`
	Ts                     int64  `json:"ts"`
}

// TokenInfo - token snapshot with derived values
type TokenInfo struct {
	*record.Token
	Circulating uint64 `json:"circulating"`
	Holders     int    `json:"holders"`
}

// VersionsReply - object history of a token
type VersionsReply struct {
	TokenId          string                `json:"tokenId"`
	CurrentVersion   int64                 `json:"currentVersion"`
	CurrentObjectCid string                `json:"currentObjectCid"`
	ObjectVersions   []record.AssetVersion `json:"objectVersions"`
}

// HoldersReply - one page of positive balances
type HoldersReply struct {
	TokenId  string           `json:"tokenId"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	Total    int              `json:"total"`
	Items    []record.Holding `json:"items"`
}

// TxQuery - transaction listing selection
//
// Types is a comma separated list of codes or names
type TxQuery struct {
	Owner    string `json:"owner"`
	TokenId  string `json:"tokenId"`
	Types    string `json:"types"`
	From     int64  `json:"from"`
	To       int64  `json:"to"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// TransactionsReply - one page of settled transactions
type TransactionsReply struct {
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
	Total    int                  `json:"total"`
	Items    []record.Transaction `json:"items"`
}

// CalcCidRequest - preflight for an object update
type CalcCidRequest struct {
	ObjectJson string `json:"objectJson"`
	FileName   string `json:"fileName"`
	Version    int64  `json:"version"`
}

// CalcCidReply - the values an update must sign
type CalcCidReply struct {
	Cid       string `json:"cid"`
	Sha       string `json:"sha"`
	Canonical string `json:"canonical"`
}

// NewWalletReply - the private key is only ever returned here
type NewWalletReply struct {
	Address       string `json:"address"`
	Label         string `json:"label,omitempty"`
	PublicKeyPem  string `json:"publicKeyPem"`
	PrivateKeyPem string `json:"privateKeyPem"`
}

// PortfolioItem - a holding joined with its token
type PortfolioItem struct {
	TokenId          string `json:"tokenId"`
	Balance          uint64 `json:"balance"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	CurrentObjectCid string `json:"currentObjectCid"`
	CurrentVersion   int64  `json:"currentVersion"`
	MaxSupply        uint64 `json:"maxSupply"`
	Circulating      uint64 `json:"circulating"`
}

// PortfolioReply - all positive holdings of an address
type PortfolioReply struct {
	Address string          `json:"address"`
	Items   []PortfolioItem `json:"items"`
}

// ChainReply - latest blocks and totals
type ChainReply struct {
	Blocks  []record.Block `json:"blocks"`
	Count   uint64         `json:"count"`
	TxCount uint64         `json:"txCount"`
}

// InfoReply - node state
type InfoReply struct {
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	Queued       int    `json:"queued"`
	Enqueued     uint64 `json:"enqueued"`
	Drained      uint64 `json:"drained"`
	Height       uint64 `json:"height"`
	Transactions uint64 `json:"transactions"`
}
