// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/storage"
)

// PutWallet - store a wallet, replacing any earlier record for the address
func (l *Ledger) PutWallet(wallet *record.Wallet) error {
	buffer, err := json.Marshal(wallet)
	if nil != err {
		return err
	}
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Wallets, []byte(wallet.Address), buffer)
	return trx.Commit()
}

// Wallet - fetch a wallet by address
func (l *Ledger) Wallet(address string) (*record.Wallet, error) {
	buffer, err := storage.Pool.Wallets.Get([]byte(address))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.WalletNotFound
	}
	wallet := &record.Wallet{}
	err = json.Unmarshal(buffer, wallet)
	if nil != err {
		return nil, err
	}
	return wallet, nil
}
