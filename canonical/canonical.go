// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/bitmark-inc/objectchaind/fault"
)

// Canonicalize - parse a JSON document and return its canonical form
func Canonicalize(document string) (string, error) {
	value, err := parse(document)
	if nil != err {
		return "", err
	}

	buffer := &bytes.Buffer{}
	if err := write(buffer, value); nil != err {
		return "", err
	}
	return buffer.String(), nil
}

// Sha256Hex - lower case hex SHA-256 of the UTF-8 bytes of a string
func Sha256Hex(s string) string {
	digest := sha256.Sum256([]byte(s))
	return hex.EncodeToString(digest[:])
}

// decode exactly one JSON value keeping numbers as their literal text
func parse(document string) (interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(document))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); nil != err {
		return nil, fault.InvalidJSON
	}

	// anything other than whitespace after the value is an error
	if _, err := decoder.Token(); io.EOF != err {
		return nil, fault.InvalidJSON
	}
	return value, nil
}

func write(buffer *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {

	case nil:
		buffer.WriteString("null")

	case bool:
		if v {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}

	case json.Number:
		buffer.WriteString(v.String())

	case string:
		return writeString(buffer, v)

	case []interface{}:
		buffer.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buffer.WriteByte(',')
			}
			if err := write(buffer, item); nil != err {
				return err
			}
		}
		buffer.WriteByte(']')

	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buffer.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buffer.WriteByte(',')
			}
			if err := writeString(buffer, k); nil != err {
				return err
			}
			buffer.WriteByte(':')
			if err := write(buffer, v[k]); nil != err {
				return err
			}
		}
		buffer.WriteByte('}')

	default:
		return fault.InvalidJSON
	}
	return nil
}

// strings are escaped by the standard encoder but without the HTML
// escapes, so "<", ">" and "&" pass through unchanged
func writeString(buffer *bytes.Buffer, s string) error {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); nil != err {
		return err
	}
	buffer.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}
