// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in process fan out of events such as newly
// sealed blocks to the publishers and live feed listeners
package messagebus
