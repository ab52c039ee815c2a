// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockproducer

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/objectchaind/authority"
	"github.com/bitmark-inc/objectchaind/engine"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/merkle"
	"github.com/bitmark-inc/objectchaind/messagebus"
	"github.com/bitmark-inc/objectchaind/record"
	"github.com/bitmark-inc/objectchaind/reservoir"
)

const (
	DefaultInterval  = 5 * time.Second
	DefaultBatchSize = 500

	// bus command for a sealed block
	BlockCommand = "block"
)

// Configuration - producer section of the configuration file
type Configuration struct {
	IntervalSeconds int    `gluamapper:"interval_seconds" json:"interval_seconds"`
	BatchSize       int    `gluamapper:"batch_size" json:"batch_size"`
	AuthorityKey    string `gluamapper:"authority_key" json:"authority_key"`
}

// Settler - validation and state transition of a single transaction
type Settler interface {
	Validate(tx *record.Transaction) bool
	Apply(tx *record.Transaction) error
}

// Stats - counters since start
type Stats struct {
	Rounds  uint64 `json:"rounds"`
	Blocks  uint64 `json:"blocks"`
	Settled uint64 `json:"settled"`
	Dropped uint64 `json:"dropped"`
}

// Producer - the single consumer of the intake queue
type Producer struct {
	log       *logger.L
	queue     reservoir.Reservoir
	settler   Settler
	store     ledger.Store
	signer    authority.Signer
	interval  time.Duration
	batchSize int

	now func() time.Time

	rounds  *atomic.Uint64
	blocks  *atomic.Uint64
	settled *atomic.Uint64
	dropped *atomic.Uint64
}

// New - create a producer, zero interval or batch size take the defaults
func New(log *logger.L, queue reservoir.Reservoir, settler Settler, store ledger.Store, signer authority.Signer, interval time.Duration, batchSize int) *Producer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Producer{
		log:       log,
		queue:     queue,
		settler:   settler,
		store:     store,
		signer:    signer,
		interval:  interval,
		batchSize: batchSize,
		now:       time.Now,
		rounds:    atomic.NewUint64(0),
		blocks:    atomic.NewUint64(0),
		settled:   atomic.NewUint64(0),
		dropped:   atomic.NewUint64(0),
	}
}

// Stats - snapshot of the counters
func (p *Producer) Stats() Stats {
	return Stats{
		Rounds:  p.rounds.Load(),
		Blocks:  p.blocks.Load(),
		Settled: p.settled.Load(),
		Dropped: p.dropped.Load(),
	}
}

// Run - background process, one round per tick
//
// a round in progress is always completed before shutdown is seen
func (p *Producer) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log

	log.Info("starting…")
	log.Infof("interval: %s  batch size: %d", p.interval, p.batchSize)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			_, err := p.Round()
			if nil != err {
				log.Errorf("round error: %s", err)
			}
		}
	}

	log.Info("finished")
}

// Round - settle one batch and seal a block
//
// returns nil block when nothing settled
func (p *Producer) Round() (*record.Block, error) {
	txs := p.queue.Drain(p.batchSize)
	if 0 == len(txs) {
		return nil, nil
	}
	p.rounds.Inc()

	applied, err := p.settle(txs)

	p.settled.Add(uint64(len(applied)))
	p.dropped.Add(uint64(len(txs) - len(applied)))

	if 0 == len(applied) {
		p.log.Debugf("round: drained: %d  nothing settled", len(txs))
		return nil, err
	}

	block, sealErr := p.seal(applied)
	if nil != sealErr {
		p.log.Criticalf("seal: %d settled transactions without block: %s", len(applied), sealErr)
		return nil, sealErr
	}
	return block, err
}

// apply the batch in type group order
func (p *Producer) settle(txs []*record.Transaction) ([]*record.Transaction, error) {
	log := p.log

	groups := make(map[record.TxType][]*record.Transaction, len(record.ProcessingOrder))
	for _, tx := range txs {
		groups[tx.Type] = append(groups[tx.Type], tx)
	}

	applied := make([]*record.Transaction, 0, len(txs))

	for _, txType := range record.ProcessingOrder {
		group := groups[txType]
		if 0 == len(group) {
			continue
		}

		valid := make([]*record.Transaction, 0, len(group))
		for _, tx := range group {
			if p.settler.Validate(tx) {
				valid = append(valid, tx)
			}
		}

		for _, tx := range valid {
			err := p.settler.Apply(tx)
			if nil == err {
				applied = append(applied, tx)
				continue
			}
			if engine.IsFatal(err) {
				log.Criticalf("round aborted at tx: %s  applied: %d  error: %s", tx.Id, len(applied), err)
				return applied, err
			}
			log.Warnf("tx: %s  type: %s  not applied: %s", tx.Id, tx.Type, err)
		}
		log.Debugf("group: %s  members: %d  valid: %d", txType, len(group), len(valid))
	}

	return applied, nil
}

// build, hash, sign and append the next block
func (p *Producer) seal(applied []*record.Transaction) (*record.Block, error) {
	log := p.log

	last, found, err := p.store.LastBlock()
	if nil != err {
		return nil, err
	}
	index := uint64(1)
	previousHash := ""
	if found {
		index = last.Index + 1
		previousHash = last.Hash
	}

	ids := make([]string, len(applied))
	for i, tx := range applied {
		ids[i] = tx.Id
	}

	transactionsJson, err := json.Marshal(applied)
	if nil != err {
		return nil, err
	}

	block := &record.Block{
		Index:            index,
		Timestamp:        p.now().UnixNano() / int64(time.Millisecond),
		PreviousHash:     previousHash,
		MerkleRoot:       merkle.Root(ids),
		TxCount:          len(applied),
		TransactionsJson: string(transactionsJson),
	}
	block.Hash = block.ComputeHash()

	if nil != p.signer {
		publicKey, signature, ok, err := p.signer.Sign(block.Hash)
		if nil != err {
			log.Errorf("block: %d  sign error: %s  sealing unsigned", index, err)
		} else if ok {
			block.ProducerPublicKeyPem = publicKey
			block.ProducerSignatureBase64 = signature
		}
	}

	err = p.store.AppendBlock(block)
	if nil != err {
		return nil, err
	}
	p.blocks.Inc()

	log.Infof("block: %d  hash: %s  transactions: %d", block.Index, block.Hash, block.TxCount)

	packed, err := json.Marshal(block)
	if nil == err {
		messagebus.Bus.Broadcast.Send(BlockCommand, packed)
	}
	return block, nil
}
