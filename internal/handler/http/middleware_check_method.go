// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler. A known path requested with a method it does not
// serve is answered with 404 Not Found instead of chi's default 405, so the
// route set is not revealed to callers probing with other methods.
//
// A request whose method is routable is still passed to router, which covers
// the case of the handler being invoked directly.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
