// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/rpc/certificate"
	"github.com/bitmark-inc/objectchaind/rpc/handler"
	"github.com/bitmark-inc/objectchaind/rpc/listeners"
	"github.com/bitmark-inc/objectchaind/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	connections *atomic.Uint64
	listeners   []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	svc server.Service,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	globalData.connections = atomic.NewUint64(0)
	globalData.listeners = nil
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcServer := server.Create(log, svc)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		globalData.connections,
		rpcServer,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		hdlr := handler.New(
			log,
			rpcServer,
			time.Now(),
			version,
			httpsConfiguration.MaximumConnections,
			svc,
			svc,
		)

		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
		if nil != httpsListener {
			err = httpsListener.Serve()
			if nil != err {
				return err
			}
			globalData.listeners = append(globalData.listeners, httpsListener)
		}
	}

	err = rpcListener.Serve()
	if nil != err {
		closeListeners()
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeListeners()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Connections - current number of JSON RPC connections
func Connections() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.connections {
		return 0
	}
	return globalData.connections.Load()
}

func closeListeners() {
	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil
}
