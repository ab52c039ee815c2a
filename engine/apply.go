// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
)

// Engine - applies validated transactions to a ledger store
type Engine struct {
	log   *logger.L
	store ledger.Store
}

// New - create an engine over a store
func New(log *logger.L, store ledger.Store) *Engine {
	return &Engine{
		log:   log,
		store: store,
	}
}

// Store - the ledger the engine writes to
func (e *Engine) Store() ledger.Store {
	return e.store
}

// Validate - check against the current committed state
func (e *Engine) Validate(tx *record.Transaction) bool {
	err := Check(tx, e.store)
	if nil != err {
		e.log.Debugf("tx: %s  type: %s  rejected: %s", tx.Id, tx.Type, err)
		return false
	}
	return true
}

// IsFatal - true for a failure that breaks the validate/apply invariant
//
// such a failure must end the settlement round
func IsFatal(err error) bool {
	return fault.ObjectPreconditionFailed == err
}

// Apply - perform the state transition and append to the transaction log
//
// the transaction must already have passed Validate; every write of
// one call commits together or not at all
func (e *Engine) Apply(tx *record.Transaction) error {
	err := e.store.Update(func(txn ledger.Txn) error {
		var err error
		switch tx.Type {
		case record.MintType:
			err = applyMint(txn, tx)
		case record.TransferType:
			err = applyTransfer(txn, tx)
		case record.BurnType:
			err = applyBurn(txn, tx)
		case record.UpdateObjectType:
			err = applyUpdateObject(txn, tx)
		default:
			err = fault.InvalidTransactionType
		}
		if nil != err {
			return err
		}
		return txn.AppendTransaction(tx)
	})

	if nil != err {
		if IsFatal(err) {
			e.log.Criticalf("tx: %s  token: %s  apply: %s", tx.Id, tx.TokenId, err)
		} else {
			e.log.Debugf("tx: %s  type: %s  apply: %s", tx.Id, tx.Type, err)
		}
	}
	return err
}

func applyMint(txn ledger.Txn, tx *record.Transaction) error {
	if tx.Quantity <= 0 {
		return fault.InvalidQuantity
	}
	quantity := uint64(tx.Quantity)

	token, err := txn.Token(tx.TokenId)
	if nil != err {
		return err
	}
	if !token.CanMint(quantity) {
		return fault.MaxSupplyExceeded
	}

	err = credit(txn, tx.TokenId, tx.ToAddress, quantity)
	if nil != err {
		return err
	}

	token.TotalMinted += quantity
	return txn.PutToken(token)
}

func applyTransfer(txn ledger.Txn, tx *record.Transaction) error {
	if tx.Quantity <= 0 {
		return fault.InvalidQuantity
	}
	quantity := uint64(tx.Quantity)

	err := debit(txn, tx.TokenId, tx.FromAddress, quantity)
	if nil != err {
		return err
	}
	return credit(txn, tx.TokenId, tx.ToAddress, quantity)
}

func applyBurn(txn ledger.Txn, tx *record.Transaction) error {
	if tx.Quantity <= 0 {
		return fault.InvalidQuantity
	}
	quantity := uint64(tx.Quantity)

	token, err := txn.Token(tx.TokenId)
	if nil != err {
		return err
	}

	err = debit(txn, tx.TokenId, tx.FromAddress, quantity)
	if nil != err {
		return err
	}

	token.TotalBurned += quantity
	return txn.PutToken(token)
}

// single conditional write keyed on token, controller and current cid
func applyUpdateObject(txn ledger.Txn, tx *record.Transaction) error {
	controller, err := identity.AddressFromPEM(tx.PublicKeyPem)
	if nil != err {
		return err
	}

	version := record.AssetVersion{
		AssetCid:           tx.NewObjectCid,
		VersionNumber:      tx.NewVersionNumber,
		PreviousAssetCid:   tx.PreviousObjectCid,
		JsonSha256:         tx.JsonSha256,
		CommittedByAddress: controller,
		SignatureBase64:    tx.SignatureBase64,
		CreatedAt:          tx.CreatedAt,
	}
	return txn.CompareAndSwapObject(tx.TokenId, controller, tx.PreviousObjectCid, version)
}

// add to a holding, creating it if absent
func credit(txn ledger.Txn, tokenId string, owner string, quantity uint64) error {
	balance, _, err := txn.Balance(tokenId, owner)
	if nil != err {
		return err
	}
	if balance+quantity < balance {
		return fault.BalanceOverflow
	}
	return txn.PutBalance(tokenId, owner, balance+quantity)
}

// remove from an existing holding, never below zero
func debit(txn ledger.Txn, tokenId string, owner string, quantity uint64) error {
	balance, found, err := txn.Balance(tokenId, owner)
	if nil != err {
		return err
	}
	if !found || balance < quantity {
		return fault.InsufficientBalance
	}
	return txn.PutBalance(tokenId, owner, balance-quantity)
}
