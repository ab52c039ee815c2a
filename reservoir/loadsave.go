// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/record"
)

type tagType byte

// record types in reservoir file
const (
	taggedBOF         tagType = iota
	taggedEOF         tagType = iota
	taggedTransaction tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("objectchain-reservoir v1.0")

const maximumRecordLength = 65535

// SaveToFile - write undrained transactions to the reservoir file
//
// the queue is left unchanged
func (q *Queue) SaveToFile() error {
	if "" == q.filename {
		return nil
	}

	q.Lock()
	items := make([]*record.Transaction, len(q.items))
	copy(items, q.items)
	q.Unlock()

	q.log.Infof("saving: %d transactions", len(items))

	f, err := os.OpenFile(q.filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	// write beginning of file marker
	err = writeRecord(w, taggedBOF, bofData)
	if nil != err {
		return err
	}

	for _, tx := range items {
		packed, err := json.Marshal(tx)
		if nil != err {
			return err
		}
		if len(packed) > maximumRecordLength {
			q.log.Errorf("tx: %s  length: %d > %d  not saved", tx.Id, len(packed), maximumRecordLength)
			continue
		}
		err = writeRecord(w, taggedTransaction, packed)
		if nil != err {
			return err
		}
	}

	// end the file
	err = writeRecord(w, taggedEOF, []byte("EOF"))
	if nil != err {
		return err
	}

	err = w.Flush()
	if nil != err {
		return err
	}

	q.log.Info("save completed")
	return nil
}

// LoadFromFile - enqueue transactions saved by an earlier run
//
// a missing file is not an error
func (q *Queue) LoadFromFile() (int, error) {
	if "" == q.filename {
		return 0, nil
	}

	f, err := os.Open(q.filename)
	if os.IsNotExist(err) {
		q.log.Info("no reservoir file")
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	// must have BOF record first
	tag, packed, err := readRecord(r)
	if nil != err {
		return 0, err
	}
	if taggedBOF != tag || !bytes.Equal(bofData, packed) {
		return 0, fault.WrongReservoirFile
	}

	q.log.Infof("restore from file: %s", q.filename)

	n := 0
restore_loop:
	for {
		tag, packed, err := readRecord(r)
		if nil != err {
			return n, err
		}
		switch tag {

		case taggedEOF:
			break restore_loop

		case taggedTransaction:
			tx := &record.Transaction{}
			err := json.Unmarshal(packed, tx)
			if nil != err {
				q.log.Errorf("unable to unpack transaction: %s", err)
				continue restore_loop
			}
			q.Enqueue(tx)
			n += 1

		default:
			q.log.Errorf("read invalid tag: 0x%02x", tag)
			return n, fmt.Errorf("read invalid tag: 0x%02x", tag)
		}
	}

	q.log.Infof("restore completed: %d transactions", n)
	return n, nil
}

// write a tagged record
func writeRecord(w io.Writer, tag tagType, packed []byte) error {
	if len(packed) > maximumRecordLength {
		return fault.RecordTruncated
	}

	_, err := w.Write([]byte{byte(tag)})
	if nil != err {
		return err
	}

	count := make([]byte, 2)
	binary.BigEndian.PutUint16(count, uint16(len(packed)))
	_, err = w.Write(count)
	if nil != err {
		return err
	}
	_, err = w.Write(packed)
	return err
}

func readRecord(r io.Reader) (tagType, []byte, error) {
	header := make([]byte, 3)
	_, err := io.ReadFull(r, header)
	if nil != err {
		return taggedEOF, []byte{}, err
	}

	tag := tagType(header[0])
	count := int(binary.BigEndian.Uint16(header[1:]))

	if count > 0 {
		buffer := make([]byte, count)
		_, err := io.ReadFull(r, buffer)
		if nil != err {
			return taggedEOF, []byte{}, err
		}
		return tag, buffer, nil
	}
	return tag, []byte{}, nil
}
