// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import "errors"

// Sentinel errors raised while extracting credentials from a request.
var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is empty")
	ErrInvalidAuthorizationHeader = errors.New("authorization header is invalid")
	ErrEmptyToken                 = errors.New("token is empty")
)
