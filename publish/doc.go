// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - announce sealed blocks to external subscribers
//
// every message on the broadcast bus is sent as a multipart ZeroMQ
// PUB message (chain, command, parameters...) on each configured
// address and, when a NATS server is configured, published on the
// subject "{subject}.{command}"
package publish
