// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
)

const (
	minConnectionCount = 1
	keepAlivePeriod    = 3 * time.Minute
)

// Listener - a started server on one or more addresses
type Listener interface {
	Serve() error
	Close() error
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// convert listen addresses to network type and a form net.Listen accepts
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	listen := make([]string, len(addrs))
	for i, address := range addrs {
		if "" == address {
			return nil, nil, fault.InvalidIpAddress
		}

		host := ""
		switch {
		case '*' == address[0]:
			parts := strings.Split(address, ":")
			if 2 != len(parts) {
				return nil, nil, fault.InvalidIpAddress
			}
			listen[i] = "[::]:" + parts[1]
			host = "::"
			networks[i] = "tcp"
		case '[' == address[0]:
			host = strings.Split(address[1:], "]:")[0]
			listen[i] = address
			networks[i] = "tcp6"
		default:
			host = strings.Split(address, ":")[0]
			listen[i] = address
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen address: %q  error: %s", address, err)
			return nil, nil, err
		}
	}

	return networks, listen, nil
}
