// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import "context"

type ctxKey int

// userIDCtxKey stores the authenticated caller's user id, placed there by the
// auth middleware.
const userIDCtxKey ctxKey = iota

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// userIDFromContext returns the authenticated user id. The second return is
// false only for requests that bypassed the auth middleware.
func userIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int64)
	return userID, ok
}
