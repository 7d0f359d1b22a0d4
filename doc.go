// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package http2 implements the per-stream HTTP semantics validator that
// sits between an HTTP/2 frame decoder and the application layer: it
// classifies header fields, enforces pseudo-header ordering and
// method-specific requirements, reconciles declared Content-Length
// against DATA frames, and tracks interim (1xx) versus final responses.
//
// It does not decode frames, decode HPACK, or do any I/O. Callers feed
// it decoded (name, value) pairs and a handful of stream lifecycle
// events; see the package-level functions and *StreamHTTPState methods
// for the six entry points a caller is expected to invoke.
package http2
