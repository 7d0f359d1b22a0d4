// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session is a minimal, in-memory harness that exercises the
// http2 package's validator the way a real HTTP/2 endpoint would: it
// owns a map of streams, dispatches decoded header/data/end-stream
// events to the validator, and turns a returned error into a stream
// reset. It does no real framing, HPACK, or network I/O — those are
// external collaborators per spec.md section 1 — but it keeps the shape
// of the teacher's serverConn dispatch loop (processHeaders ->
// header-block -> completion check -> resetStreamInLoop) trimmed to
// just what is needed to drive and observe the validator end-to-end.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bradfitz/http2/hpack"

	"github.com/baranov1ch/http2"
)

// ErrCode is the abstract stream-reset reason a Conn records when the
// validator rejects a stream. It stands in for an RST_STREAM error code
// in a real endpoint.
type ErrCode int

const (
	ErrCodeNone ErrCode = iota
	ErrCodeProtocol
)

// Stream pairs a core http2.StreamHTTPState with the bookkeeping a
// session needs to dispatch events to it: whether it has been reset,
// and its last error.
type Stream struct {
	ID    uint32
	State *http2.StreamHTTPState

	reset   bool
	resetBy error
}

// Conn is the harness: the "surrounding session" spec.md section 1
// references only to delimit the boundary, built just far enough to
// drive the six validator entry points from test code or a small
// example, the way serverConn did for the teacher's full server.
type Conn struct {
	IsServer bool
	Opts     http2.Options
	Log      *slog.Logger

	mu      sync.Mutex
	gLock   goroutineLock
	streams map[uint32]*Stream
}

// NewConn creates a Conn. log may be nil, in which case Noop() is used
// — the validator itself never logs (spec.md section 7); Conn logs at
// info level when it turns a validator error into a stream reset, and at
// debug level when OnHeader reports a header as ignored.
func NewConn(isServer bool, opts http2.Options, log *slog.Logger) *Conn {
	if log == nil {
		log = Noop()
	}
	return &Conn{
		IsServer: isServer,
		Opts:     opts,
		Log:      log,
		gLock:    newGoroutineLock(),
		streams:  make(map[uint32]*Stream),
	}
}

// Open creates the StreamHTTPState for a newly opened stream.
func (c *Conn) Open(streamID uint32) *Stream {
	c.gLock.check()
	c.mu.Lock()
	defer c.mu.Unlock()
	st := &Stream{ID: streamID, State: http2.NewStreamHTTPState(streamID)}
	c.streams[streamID] = st
	return st
}

// Stream returns the stream previously opened with Open, or nil.
func (c *Conn) Stream(streamID uint32) *Stream {
	c.gLock.check()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streams[streamID]
}

// Close discards a stream's state, as if RST_STREAM had been sent or
// received; no cleanup callback is needed (spec.md section 5).
func (c *Conn) Close(streamID uint32) {
	c.gLock.check()
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.streams, streamID)
}

// OnHeader dispatches one decoded header field to the validator and
// logs+resets the stream on a fatal error.
func (c *Conn) OnHeader(st *Stream, frame http2.FrameType, nv hpack.HeaderField, isTrailer bool) (http2.HeaderOutcome, error) {
	c.gLock.check()
	outcome, err := http2.OnHeader(st.State, c.IsServer, frame, nv, isTrailer, c.Opts)
	if err != nil {
		c.reset(st, err)
		return outcome, err
	}
	if outcome == http2.HeaderIgnored {
		c.Log.Debug("ignored malformed header", "stream", st.ID, "name", nv.Name)
	}
	return outcome, nil
}

// OnRequestHeadersComplete, OnResponseHeadersComplete,
// OnTrailerHeadersComplete, OnRemoteEndStream, and OnDataChunk forward
// to the matching http2 package function, resetting the stream on
// error.

func (c *Conn) OnRequestHeadersComplete(st *Stream, frame http2.FrameType) error {
	c.gLock.check()
	if err := http2.OnRequestHeadersComplete(st.State, frame); err != nil {
		c.reset(st, err)
		return err
	}
	return nil
}

func (c *Conn) OnResponseHeadersComplete(st *Stream) error {
	c.gLock.check()
	if err := http2.OnResponseHeadersComplete(st.State); err != nil {
		c.reset(st, err)
		return err
	}
	return nil
}

func (c *Conn) OnTrailerHeadersComplete(st *Stream, frameEndStream bool) error {
	c.gLock.check()
	if err := http2.OnTrailerHeadersComplete(st.State, frameEndStream); err != nil {
		c.reset(st, err)
		return err
	}
	return nil
}

func (c *Conn) OnRemoteEndStream(st *Stream) error {
	c.gLock.check()
	if err := http2.OnRemoteEndStream(st.State); err != nil {
		c.reset(st, err)
		return err
	}
	return nil
}

func (c *Conn) OnDataChunk(st *Stream, n uint64) error {
	c.gLock.check()
	if err := http2.OnDataChunk(st.State, n); err != nil {
		c.reset(st, err)
		return err
	}
	return nil
}

// RecordRequestMethod primes method-family flags before full
// validation, per http2.RecordRequestMethod.
func (c *Conn) RecordRequestMethod(st *Stream, frame http2.FrameType, nvs []hpack.HeaderField) {
	c.gLock.check()
	http2.RecordRequestMethod(st.State, frame, nvs)
}

func (c *Conn) reset(st *Stream, err error) {
	st.reset = true
	st.resetBy = err
	c.Log.Info("resetting stream", "stream", st.ID, "code", ErrCodeProtocol, "err", err)
}

// Reset reports whether the stream has been reset, and why.
func (s *Stream) Reset() (bool, error) { return s.reset, s.resetBy }

func (c ErrCode) String() string {
	switch c {
	case ErrCodeProtocol:
		return "PROTOCOL_ERROR"
	default:
		return fmt.Sprintf("ErrCode(%d)", int(c))
	}
}
