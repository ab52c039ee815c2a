// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package service - the operations offered to clients
//
// submissions are checked for form and signature and then queued;
// acceptance says nothing about settlement, which is only visible once
// the transaction appears in the settled log
//
// token creation and freeze are synchronous and bypass the queue
package service
