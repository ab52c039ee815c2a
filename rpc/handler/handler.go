// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/messagebus"
	"github.com/bitmark-inc/objectchaind/service"
)

// names used in the allow configuration
const (
	AllowDetails = "details"
	AllowLive    = "live"
)

const (
	liveQueueSize = 100
	writeTimeout  = 10 * time.Second
	pingInterval  = 30 * time.Second
	liveCommand   = "block"
)

// Handler - the HTTPS endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Content(http.ResponseWriter, *http.Request)
	BlocksLive(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	connections        *atomic.Uint64
	allow              map[string][]*net.IPNet
	chain              service.Chain
	contents           service.Contents
	upgrader           websocket.Upgrader
}

// New - create the HTTPS handler
//
// chain and contents may be nil, then the corresponding endpoints
// report not found
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
	chain service.Chain,
	contents service.Contents,
) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
		connections:        atomic.NewUint64(0),
		allow:              make(map[string][]*net.IPNet),
		chain:              chain,
		contents:           contents,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// SetAllow - per endpoint access control
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.leave()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc serve error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - node information, restricted by the allow list
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed(AllowDetails, r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.leave()

	type theReply struct {
		Version     string             `json:"version"`
		Uptime      string             `json:"uptime"`
		Connections uint64             `json:"connections"`
		Node        *service.InfoReply `json:"node,omitempty"`
	}

	reply := theReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.connections.Load(),
	}

	if nil != h.chain {
		info, err := h.chain.Info()
		if nil != err {
			h.log.Errorf("node info error: %s", err)
			sendInternalServerError(w)
			return
		}
		reply.Node = info
	}

	sendReply(w, reply)
}

// Content - download a stored blob by its cid
func (h *handler) Content(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	cid := mux.Vars(r)["cid"]
	if "" == cid || nil == h.contents {
		sendNotFound(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.leave()

	data, stored, err := h.contents.GetContent(cid)
	if fault.IsErrNotFound(err) {
		sendNotFound(w)
		return
	}
	if nil != err {
		h.log.Errorf("content: %s  error: %s", cid, err)
		sendInternalServerError(w)
		return
	}

	contentType := "application/octet-stream"
	if strings.HasSuffix(strings.ToLower(stored.FileName), ".json") {
		contentType = "application/json"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(stored.FileName))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// BlocksLive - websocket stream of sealed block summaries
func (h *handler) BlocksLive(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if _, restricted := h.allow[AllowLive]; restricted && !h.allowed(AllowLive, r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.leave()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if nil != err {
		// upgrader has already replied
		h.log.Debugf("websocket upgrade error: %s", err)
		return
	}
	defer conn.Close()

	queue := messagebus.Bus.Broadcast.Chan(liveQueueSize)
	defer messagebus.Bus.Broadcast.Release(queue)

	// reader only detects close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); nil != err {
				return
			}
		}
	}()

	h.log.Infof("live blocks: %s connected", r.RemoteAddr)

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

loop:
	for {
		select {
		case <-closed:
			break loop

		case <-ping.C:
			deadline := time.Now().Add(writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); nil != err {
				break loop
			}

		case item := <-queue:
			if liveCommand != item.Command || 0 == len(item.Parameters) {
				continue loop
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, item.Parameters[0]); nil != err {
				h.log.Debugf("live blocks: %s  write error: %s", r.RemoteAddr, err)
				break loop
			}
		}
	}

	h.log.Infof("live blocks: %s disconnected", r.RemoteAddr)
}

// increment the connection count, false if over the limit
func (h *handler) enter() bool {
	if h.connections.Inc() > h.maximumConnections {
		h.connections.Dec()
		return false
	}
	return true
}

func (h *handler) leave() {
	h.connections.Dec()
}

func (h *handler) allowed(name string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[name] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
