/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import "net/http"

type contextKey string

// authDetailsKey stores whatever the AuthFunc returned for the handler
const authDetailsKey contextKey = "authDetails"

// AuthDetails retrieves the value the AuthFunc attached to the request
// context, or nil if the route has no AuthFunc
func AuthDetails(req *http.Request) any {
	return req.Context().Value(authDetailsKey)
}
