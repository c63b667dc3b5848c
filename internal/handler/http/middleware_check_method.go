// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/utils"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// A request whose path matches a route under a different method gets
// 405 Method Not Allowed with an Allow header listing the methods the path
// does accept, and a JSON error body like the rest of the device API.
// Parameterised routes such as /control/{action} are matched as chi
// matches them.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range knownMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 || slices.Contains(allowed, r.Method) {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}
