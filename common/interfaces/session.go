/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

// Session owns the single bearer token a client holds. At most one token
// value is stored at a time; an empty string means unauthenticated.
// Implementations must be safe for concurrent use because multiple requests
// may be in flight at once. Reads and writes are whole-value replace/delete
// operations, so there is no partial-update risk at the call sites.
type Session interface {
	Token() string
	SetToken(token string)
	Clear()
}
