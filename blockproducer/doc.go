// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockproducer - the periodic settlement round
//
// each tick drains a batch from the intake queue, settles it group by
// group in the fixed type order (Mint, Transfer, Burn, UpdateObject)
// and seals the settled transactions into the next block
//
// within a group every member is validated against the state left by
// the previous groups before any member is applied, so two members of
// the same group do not see each other; the engine re-checks balance
// and supply on apply and those that no longer fit are dropped
//
// a failed object compare-and-swap ends the round: what was applied
// before it is sealed and the rest of the batch is dropped
package blockproducer
