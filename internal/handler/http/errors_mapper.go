// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"errors"
	"net/http"

	"github.com/cipherhold/cipherhold/internal/blob"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/store"
)

var errorStatusMap = map[error]int{
	blob.ErrLockTimeout:        http.StatusConflict,
	blob.ErrBlobNotFound:       http.StatusNotFound,
	blob.ErrInvalidStorageKey:  http.StatusInternalServerError,
	store.ErrNameConflict:      http.StatusConflict,
	store.ErrDirectoryNotFound: http.StatusNotFound,
	store.ErrFileNotFound:      http.StatusNotFound,
	store.ErrTagNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the response body for a failed request. Contention
// is the only case that gets a hint beyond the status text: the operation is
// safe to retry once the competing writer finishes.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, blob.ErrLockTimeout):
		return "file is locked by another operation, try again"
	case status == http.StatusInternalServerError:
		return http.StatusText(status)
	default:
		return err.Error()
	}
}

// writeError logs err and writes the mapped status with its message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Str("func", funcName).Int("status", status).Send()

	http.Error(w, messageFromError(err, status), status)
}
