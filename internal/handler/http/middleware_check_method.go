// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/utils"
)

// notFound renders unknown paths as {"error": "..."} like every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "route not found: "+r.URL.Path, http.StatusNotFound)
}

// checkHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi calls it when the path matches a registered route but the method is
// not handled. The response is 405 with an "Allow" header listing the
// methods the route does accept, as [RFC 9110] requires.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(checkHTTPMethod(router))
//
// [RFC 9110]: https://www.rfc-editor.org/rfc/rfc9110#name-405-method-not-allowed
func checkHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteError(w, "method "+r.Method+" not allowed", http.StatusMethodNotAllowed)
	}
}

// allowedMethods reports the methods registered for path. Sub-routers are
// searched by walking the whole tree so that parameterised patterns match.
func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
