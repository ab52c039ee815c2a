// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - the intake queue of accepted transactions that
// are waiting to be settled
//
// the queue is an unbounded FIFO: Enqueue never blocks and Drain
// removes up to a given count in arrival order. Once drained an item
// belongs to the caller. On a clean shutdown the undrained items are
// saved to a file and restored at the next start.
package reservoir
