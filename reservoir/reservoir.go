// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/objectchaind/record"
)

//go:generate mockgen -source=reservoir.go -destination=mocks/reservoir.go -package=mocks

// Reservoir - the intake queue operations
type Reservoir interface {
	Enqueue(tx *record.Transaction)
	Drain(maxCount int) []*record.Transaction
	Len() int
	Counts() (enqueued uint64, drained uint64)
}

// Queue - mutex protected FIFO
type Queue struct {
	sync.Mutex
	log      *logger.L
	filename string
	items    []*record.Transaction

	enqueued *atomic.Uint64
	drained  *atomic.Uint64
}

// New - create an empty queue
//
// filename is where SaveToFile and LoadFromFile keep undrained items,
// empty to disable persistence
func New(log *logger.L, filename string) *Queue {
	return &Queue{
		log:      log,
		filename: filename,
		items:    make([]*record.Transaction, 0, 256),
		enqueued: atomic.NewUint64(0),
		drained:  atomic.NewUint64(0),
	}
}

// Enqueue - append a transaction, never blocks on the consumer
func (q *Queue) Enqueue(tx *record.Transaction) {
	q.Lock()
	q.items = append(q.items, tx)
	q.Unlock()
	q.enqueued.Inc()
}

// Drain - remove up to maxCount items in FIFO order
func (q *Queue) Drain(maxCount int) []*record.Transaction {
	if maxCount <= 0 {
		return []*record.Transaction{}
	}

	q.Lock()
	n := len(q.items)
	if n > maxCount {
		n = maxCount
	}
	drained := make([]*record.Transaction, n)
	copy(drained, q.items[:n])

	// release references held by the backing array
	for i := 0; i < n; i += 1 {
		q.items[i] = nil
	}
	q.items = q.items[n:]
	if 0 == len(q.items) {
		q.items = make([]*record.Transaction, 0, 256)
	}
	q.Unlock()

	q.drained.Add(uint64(n))
	return drained
}

// Len - number of undrained items
func (q *Queue) Len() int {
	q.Lock()
	defer q.Unlock()
	return len(q.items)
}

// Counts - totals since start
func (q *Queue) Counts() (uint64, uint64) {
	return q.enqueued.Load(), q.drained.Load()
}
