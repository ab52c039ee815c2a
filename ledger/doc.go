// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - persisted tokens, holdings, settled transactions,
// blocks and wallets
//
// all writes go through Update which commits a single storage batch,
// so a settlement step (holding, token counters and log entry) is
// either fully visible or not at all
package ledger
