// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"net/http"

	"github.com/z5labs/loam/health"
)

// healthHandler reports a [health.Monitor]'s state as 200 or 503.
type healthHandler struct {
	monitor health.Monitor
}

// ServeHTTP implements the [http.Handler] interface.
func (h healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	healthy, err := h.monitor.Healthy(r.Context())
	if err != nil || !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}
