// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - check transactions against ledger state and apply
// their state transitions
//
// Check is read only. Apply commits the transition together with the
// transaction log entry in one ledger update, re-checking the balance
// and supply guards inside that update so that no applied transaction
// can drive a balance negative.
package engine
