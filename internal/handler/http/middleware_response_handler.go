// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter decorates [http.ResponseWriter] to record the status code
// and the number of body bytes written, for the logging middleware to report
// after the downstream handler returns.
//
// WriteHeader is forwarded to the underlying writer exactly once; later calls
// are ignored, matching the documented [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Hijack exposes the underlying connection so the websocket upgrade keeps
// working behind the logging middleware.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	w.wroteHeader = true
	w.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}
