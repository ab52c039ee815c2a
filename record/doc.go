// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persisted ledger entities
//
// all records are stored as JSON with camel case field names so that
// the same bytes serve the database, the block payload and the RPC
// replies
package record
