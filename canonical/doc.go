// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canonical - deterministic JSON normalisation and hashing
//
// Every object has its keys sorted by byte order of the key string,
// arrays keep their element order, scalars are written exactly as
// they appeared in the input and no insignificant whitespace is
// output.  Two documents that differ only in key order or whitespace
// therefore produce identical bytes, which is what makes hashes and
// signatures over object content reproducible by any client.
package canonical
