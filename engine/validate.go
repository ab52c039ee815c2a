// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
)

// Validate - true if the transaction can settle against the view
func Validate(tx *record.Transaction, view ledger.View) bool {
	return nil == Check(tx, view)
}

// Check - the reason a transaction cannot settle, nil if it can
func Check(tx *record.Transaction, view ledger.View) error {
	token, err := view.Token(tx.TokenId)
	if nil != err {
		return err
	}

	switch tx.Type {
	case record.MintType:
		if tx.Quantity <= 0 {
			return fault.InvalidQuantity
		}
		if !token.CanMint(uint64(tx.Quantity)) {
			return fault.MaxSupplyExceeded
		}
		return nil

	case record.TransferType:
		if !token.Transferable {
			return fault.NotTransferable
		}
		return checkBalance(tx, view)

	case record.BurnType:
		return checkBalance(tx, view)

	case record.UpdateObjectType:
		return checkUpdateObject(tx, token)

	default:
		return fault.InvalidTransactionType
	}
}

// sender must hold at least the quantity
func checkBalance(tx *record.Transaction, view ledger.View) error {
	if tx.Quantity <= 0 {
		return fault.InvalidQuantity
	}
	balance, found, err := view.Balance(tx.TokenId, tx.FromAddress)
	if nil != err {
		return err
	}
	if !found || balance < uint64(tx.Quantity) {
		return fault.InsufficientBalance
	}
	return nil
}

func checkUpdateObject(tx *record.Transaction, token *record.Token) error {
	if token.ObjectFrozen {
		return fault.ObjectFrozen
	}
	if "" == tx.NewObjectCid || "" == tx.PreviousObjectCid || "" == tx.PublicKeyPem || "" == tx.SignatureBase64 || "" == tx.JsonSha256 {
		return fault.MissingParameters
	}
	if 0 == tx.TsMs {
		return fault.MissingTimestamp
	}
	if "" == token.ObjectControllerAddress {
		return fault.NotController
	}

	if tx.NewVersionNumber != token.CurrentVersion+1 {
		return fault.InvalidVersion
	}
	if tx.PreviousObjectCid != token.CurrentObjectCid {
		return fault.PreviousCidMismatch
	}

	signer, err := identity.AddressFromPEM(tx.PublicKeyPem)
	if nil != err {
		return err
	}
	if signer != token.ObjectControllerAddress {
		return fault.NotController
	}

	message := identity.UpdateObjectMessage(token.TokenId, tx.NewObjectCid, tx.PreviousObjectCid, tx.NewVersionNumber, tx.JsonSha256, tx.TsMs)
	if !identity.VerifyPEM(tx.PublicKeyPem, message, tx.SignatureBase64) {
		return fault.InvalidSignature
	}
	return nil
}
