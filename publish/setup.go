// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/nats-io/nats.go"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/objectchaind/background"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/messagebus"
	"github.com/bitmark-inc/objectchaind/util"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast   []string `gluamapper:"broadcast" json:"broadcast"`
	NatsURL     string   `gluamapper:"nats_url" json:"nats_url"`
	NatsSubject string   `gluamapper:"nats_subject" json:"nats_subject"`
}

const (
	chainName          = "objectchain"
	defaultNatsSubject = "objectchain"
	busQueueSize       = 100
)

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting blocks

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the publishing sockets and start the background process
func Initialise(configuration *Configuration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	err := globalData.brdc.initialise(log, configuration, version)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

type broadcaster struct {
	log     *logger.L
	version string
	socket  *zmq.Socket
	nc      *nats.Conn
	subject string
	queue   <-chan messagebus.Message
}

// setup the sockets
func (brdc *broadcaster) initialise(log *logger.L, configuration *Configuration, version string) error {
	brdc.log = log
	brdc.version = version

	if 0 != len(configuration.Broadcast) {
		socket, err := zmq.NewSocket(zmq.PUB)
		if nil != err {
			return err
		}
		socket.SetLinger(0)
		socket.SetIpv6(true)

		for i, address := range configuration.Broadcast {
			bindTo, v6, err := util.CanonicalIPandPort("tcp://", address)
			if nil != err {
				log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
				socket.Close()
				return err
			}
			err = socket.Bind(bindTo)
			if nil != err {
				log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
				socket.Close()
				return err
			}
			log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
		}
		brdc.socket = socket
	}

	if "" != configuration.NatsURL {
		nc, err := nats.Connect(configuration.NatsURL, nats.Name("objectchaind "+version))
		if nil != err {
			log.Errorf("nats: %q  error: %s", configuration.NatsURL, err)
			if nil != brdc.socket {
				brdc.socket.Close()
			}
			return err
		}
		brdc.nc = nc
		brdc.subject = configuration.NatsSubject
		if "" == brdc.subject {
			brdc.subject = defaultNatsSubject
		}
		log.Infof("nats: %q  subject: %q", nc.ConnectedUrl(), brdc.subject)
	}

	brdc.queue = messagebus.Bus.Broadcast.Chan(busQueueSize)
	return nil
}

// Run - wait for messages on the bus and send them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			brdc.process(item)
		}
	}

	messagebus.Bus.Broadcast.Release(brdc.queue)
	if nil != brdc.socket {
		brdc.socket.Close()
	}
	if nil != brdc.nc {
		brdc.nc.Close()
	}
	log.Info("finished")
}

// send one message on every transport
func (brdc *broadcaster) process(item messagebus.Message) {
	log := brdc.log

	log.Debugf("publish: %s  parameters: %d", item.Command, len(item.Parameters))

	if nil != brdc.socket {
		parts := make([]interface{}, 0, 2+len(item.Parameters))
		parts = append(parts, chainName, item.Command)
		for _, p := range item.Parameters {
			parts = append(parts, p)
		}
		_, err := brdc.socket.SendMessage(parts...)
		if nil != err {
			log.Errorf("zmq send: %s  error: %s", item.Command, err)
		}
	}

	if nil != brdc.nc {
		payload := []byte{}
		if 0 != len(item.Parameters) {
			payload = item.Parameters[0]
		}
		err := brdc.nc.Publish(brdc.subject+"."+item.Command, payload)
		if nil != err {
			log.Errorf("nats publish: %s  error: %s", item.Command, err)
		}
	}
}
