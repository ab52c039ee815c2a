// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bitmark-inc/objectchaind/fault"
)

// TxType - type code of a transaction
type TxType int

// transaction type codes, also the fixed settlement order within a round
const (
	MintType         TxType = 1
	TransferType     TxType = 2
	BurnType         TxType = 3
	UpdateObjectType TxType = 4
)

// ProcessingOrder - the order in which type groups settle in one round
var ProcessingOrder = []TxType{MintType, TransferType, BurnType, UpdateObjectType}

// pseudo addresses for supply changes
const (
	MintAddress = "MINT"
	BurnAddress = "BURN"
)

var typeNames = map[TxType]string{
	MintType:         "Mint",
	TransferType:     "Transfer",
	BurnType:         "Burn",
	UpdateObjectType: "UpdateObject",
}

// String - name of a transaction type
func (t TxType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Valid - check the code is a known type
func (t TxType) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseTxType - accept a type code or a case insensitive name
func ParseTxType(s string) (TxType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); nil == err {
		t := TxType(n)
		if t.Valid() {
			return t, nil
		}
		return 0, fault.InvalidTransactionType
	}
	for t, name := range typeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fault.InvalidTransactionType
}

// ParseTxTypes - comma separated list, duplicates removed, order kept
func ParseTxTypes(s string) ([]TxType, error) {
	types := []TxType{}
	seen := make(map[TxType]struct{})
	for _, item := range strings.Split(s, ",") {
		if "" == strings.TrimSpace(item) {
			continue
		}
		t, err := ParseTxType(item)
		if nil != err {
			return nil, err
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types, nil
}

// UnmarshalJSON - accept either the numeric code or the name
func (t *TxType) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); nil == err {
		*t = TxType(n)
		if !t.Valid() {
			return fault.InvalidTransactionType
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); nil != err {
		return fault.InvalidTransactionType
	}
	parsed, err := ParseTxType(s)
	if nil != err {
		return err
	}
	*t = parsed
	return nil
}
