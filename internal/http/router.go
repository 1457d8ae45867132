package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/http/handlers"
)

// NewRouter registers HTTP routes on a gorilla/mux router.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Index).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	for _, res := range domain.Resources {
		r.HandleFunc(res.Path(), handler.Resource(res)).Methods(nethttp.MethodGet)
	}
	return r
}
