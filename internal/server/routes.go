package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"unit_price/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/unit-price", func(r chi.Router) {
				r.Post("/", handler(s.postV1UnitPrice))
				r.Post("/batch", handler(s.postV1UnitPriceBatch))
			})
			r.Get("/units", handler(s.getV1Units))
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
