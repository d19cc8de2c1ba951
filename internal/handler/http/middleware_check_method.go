// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFoundForWrongMethod is registered with [chi.Mux.MethodNotAllowed] so a
// known path requested with a method it does not serve gets 404 Not Found
// rather than chi's 405.
func notFoundForWrongMethod(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
