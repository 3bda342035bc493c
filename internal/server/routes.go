package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vendor_verify/pkg/contextx"
	"vendor_verify/pkg/httpx/reply"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/vendors", func(r chi.Router) {
			r.Post("/submit", handler(s.postSubmitVendor))
			// stub: fabricated report, no provider calls
			r.Get("/{gstin}", handler(s.getVendorStatus))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
