// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener channel size
const (
	defaultQueueSize = 1000
)

// Message - a command and its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - delivers each message to every current listener
//
// sending never blocks: a listener whose channel is full misses the
// message
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
	dropped   uint64
}

type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - all available message queues
var Bus = busses{
	Broadcast: &BroadcastQueue{},
}

// Send - queue a message to all listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			queue.dropped += 1
		}
	}
}

// Chan - register a new listener
//
// size of zero selects the default
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - unregister and close a listener
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, listener := range queue.listeners {
		if (<-chan Message)(listener) == c {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(listener)
			return
		}
	}
}

// Dropped - number of deliveries skipped because a listener was full
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.Lock()
	defer queue.Unlock()
	return queue.dropped
}
