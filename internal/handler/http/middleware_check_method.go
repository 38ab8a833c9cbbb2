// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a registered route but the method does
// not. This handler answers 404 {"error":"Not Found"} instead, so callers
// using an unsupported method cannot probe which routes exist.
//
// Only exact pattern matches against [http.Request.URL.Path] are considered;
// parameterised segments such as /users/{id} are not expanded during this
// check and therefore always end in 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeNotFound(w)
			return
		}

		router.ServeHTTP(w, r)
	}
}
