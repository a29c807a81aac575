// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-soft-descriptor/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A path served
// under a different method answers 404 with the usual JSON error body
// instead of chi's bare 405, so callers cannot probe which routes exist.
//
// Route patterns are matched by chi itself, so parameterised routes such as
// /api/gateway/{action} are covered.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
