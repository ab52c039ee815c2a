// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"strconv"
	"strings"
)

// message tags, these must never change
const (
	transferTag     = "NFT-TRANSFER"
	burnTag         = "NFT-BURN"
	updateObjectTag = "NFT-UPDATE-OBJECT"
	freezeTag       = "NFT-FREEZE"
)

// TransferMessage - the bytes a sender signs to move quantity to another address
func TransferMessage(tokenId string, from string, to string, quantity int64, timestamp int64) string {
	return join(
		transferTag,
		"token:"+tokenId,
		"from:"+from,
		"to:"+to,
		"qty:"+strconv.FormatInt(quantity, 10),
		"ts:"+strconv.FormatInt(timestamp, 10),
	)
}

// BurnMessage - the bytes an owner signs to destroy quantity
func BurnMessage(tokenId string, owner string, quantity int64, timestamp int64) string {
	return join(
		burnTag,
		"token:"+tokenId,
		"owner:"+owner,
		"qty:"+strconv.FormatInt(quantity, 10),
		"ts:"+strconv.FormatInt(timestamp, 10),
	)
}

// UpdateObjectMessage - the bytes a controller signs to advance the object version
func UpdateObjectMessage(tokenId string, newCid string, previousCid string, version int64, sha string, timestamp int64) string {
	return join(
		updateObjectTag,
		"token:"+tokenId,
		"new:"+newCid,
		"prev:"+previousCid,
		"ver:"+strconv.FormatInt(version, 10),
		"sha:"+sha,
		"ts:"+strconv.FormatInt(timestamp, 10),
	)
}

// FreezeMessage - the bytes a controller signs to freeze the object
func FreezeMessage(tokenId string, timestamp int64) string {
	return join(
		freezeTag,
		"token:"+tokenId,
		"ts:"+strconv.FormatInt(timestamp, 10),
	)
}

func join(lines ...string) string {
	return strings.Join(lines, "\n")
}
