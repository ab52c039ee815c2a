// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - binary merkle tree over an ordered list of strings
//
// leaves are hashed with SHA-256 and each parent is the SHA-256 of the
// concatenated lower case hex text of its two children; an odd node
// at the end of a level is paired with itself
package merkle

import (
	"github.com/bitmark-inc/objectchaind/canonical"
)

// FullTree - compute the complete tree from a set of leaves
//
// structure is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. merkle root digest
//
// an empty input gives an empty tree
func FullTree(leaves []string) []string {

	leafCount := len(leaves)
	if 0 == leafCount {
		return []string{}
	}

	// compute length of leaves + all tree levels including root
	totalLength := 1
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]string, totalLength)
	for i, leaf := range leaves {
		tree[i] = canonical.Sha256Hex(leaf)
	}

	n := leafCount
	j := 0
	for workLength := leafCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			tree[n] = canonical.Sha256Hex(tree[j] + tree[k])
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the merkle root of an ordered list of leaves
func Root(leaves []string) string {
	if 0 == len(leaves) {
		return canonical.Sha256Hex("")
	}
	tree := FullTree(leaves)
	return tree[len(tree)-1]
}
