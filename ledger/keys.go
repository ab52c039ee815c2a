// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/objectchaind/fault"
)

// counter names in the Counters pool
var (
	transactionCounterKey = []byte("transactions")
)

// per token and per owner counters
func holderCountKey(tokenId string) []byte {
	return joinKey("holders", tokenId)
}

func ownerTxCountKey(owner string) []byte {
	return joinKey("owner-txs", owner)
}

func tokenTxCountKey(tokenId string) []byte {
	return joinKey("token-txs", tokenId)
}

// tokenId ++ 0x00 ++ owner
func holdingKey(tokenId string, owner string) []byte {
	return joinKey(tokenId, owner)
}

// owner ++ 0x00 ++ tokenId
func ownerKey(owner string, tokenId string) []byte {
	return joinKey(owner, tokenId)
}

// tokenId ++ 0x00 ++ ^balance ++ owner
//
// inverting the balance makes key order largest first
func rankKey(tokenId string, balance uint64, owner string) []byte {
	key := make([]byte, 0, len(tokenId)+1+8+len(owner))
	key = append(key, tokenId...)
	key = append(key, 0x00)
	key = append(key, uint64Key(^balance)...)
	return append(key, owner...)
}

// balance and owner from a rank key
func splitRankKey(key []byte, prefixLength int) (uint64, string, error) {
	start := prefixLength + 1
	if len(key) < start+8 {
		return 0, "", fault.RecordTruncated
	}
	balance := ^binary.BigEndian.Uint64(key[start : start+8])
	return balance, string(key[start+8:]), nil
}

// name ++ 0x00 ++ sequence
func sequenceKey(name string, sequence uint64) []byte {
	return append(joinKey(name, ""), uint64Key(sequence)...)
}

func joinKey(a string, b string) []byte {
	key := make([]byte, 0, len(a)+len(b)+1)
	key = append(key, a...)
	key = append(key, 0x00)
	return append(key, b...)
}

// the part after the separator
func keySuffix(key []byte, prefixLength int) string {
	if len(key) <= prefixLength+1 {
		return ""
	}
	return string(key[prefixLength+1:])
}

func uint64Key(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
