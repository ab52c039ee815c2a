// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. block number = big endian uint64 (8 bytes)
// 4. sequence     = settlement order of a transaction, big endian uint64 (8 bytes)
// 5. txId         = 32 lower case hex characters
// 6. tokenId      = caller or system assigned text, must not contain 0x00
// 7. owner        = 40 lower case hex characters of an address
// 8. balance      = big endian uint64 (8 bytes)
//
// Blocks:
//
//   B ++ block number          - sealed blocks
//                                data: JSON block record
//
// Tokens:
//
//   K ++ tokenId               - token state including object versions
//                                data: JSON token record
//   H ++ tokenId ++ 0x00 ++ owner
//                              - holding balance
//                                data: balance
//   O ++ owner ++ 0x00 ++ tokenId
//                              - reverse index of holdings for an owner
//                                data: empty
//
// Transactions:
//
//   T ++ txId                  - settled transactions
//                                data: sequence ++ JSON transaction record
//   S ++ sequence              - settlement order
//                                data: txId
//
// Content:
//
//   C ++ cid                   - stored content record
//                                data: JSON stored content record
//   D ++ cid                   - content bytes
//                                data: raw bytes
//
// Wallets:
//
//   W ++ address               - wallet record
//                                data: JSON wallet record
//
// Counters:
//
//   N ++ name                  - named counter
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
