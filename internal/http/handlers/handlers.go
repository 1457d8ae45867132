package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/soccer-prophet/internal/catalog"
	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
)

// DatasetService is what the handlers need from the dataset layer.
type DatasetService interface {
	Load(ctx context.Context, resource domain.Resource) (catalog.Document, error)
	Availability(ctx context.Context) map[domain.Resource]error
}

// Handler wires HTTP routes to the dataset service.
type Handler struct {
	svc    DatasetService
	logger *slog.Logger
	index  []byte
}

// NewHandler constructs a Handler and renders the entry document once.
func NewHandler(svc DatasetService, logger *slog.Logger) (*Handler, error) {
	index, err := renderIndex()
	if err != nil {
		return nil, err
	}
	return &Handler{
		svc:    svc,
		logger: logger,
		index:  index,
	}, nil
}

// Resource serves one resource document as stored on disk, or the resource's fixed failure message.
func (h *Handler) Resource(resource domain.Resource) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodGet {
			writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
			return
		}
		doc, err := h.svc.Load(r.Context(), resource)
		if err != nil {
			writeResourceError(w, resource.FailureMessage(), h.logger)
			return
		}
		logging.Info(loggerFromContext(r, h.logger), "served resource",
			logging.FieldResource, string(resource),
			logging.FieldCount, doc.Count,
		)
		writeRawJSON(w, nethttp.StatusOK, doc.Body, h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

type readyResponse struct {
	Status    string            `json:"status"`
	Resources map[string]string `json:"resources"`
}

// Ready reports readiness: at least one resource document must load.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	report := h.svc.Availability(r.Context())
	resp := readyResponse{Status: "ready", Resources: make(map[string]string, len(report))}
	available := 0
	for res, err := range report {
		if err != nil {
			resp.Resources[string(res)] = "unavailable"
			continue
		}
		resp.Resources[string(res)] = "ok"
		available++
	}
	if available == 0 {
		writeError(w, r, nethttp.StatusServiceUnavailable, "no resources available", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Index serves the application's entry HTML document.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(h.index); err != nil {
		logging.Error(h.logger, "failed to write index", err)
	}
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
