package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/soccer-prophet/internal/http/middleware"
	"github.com/preston-bernstein/soccer-prophet/internal/http/requestutil"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
)

const contentTypeJSON = "application/json"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeRawJSON sends an already-encoded JSON document untouched.
func writeRawJSON(w http.ResponseWriter, status int, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil && logger != nil {
		logger.Error("failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeResourceError keeps the resource failure body to the fixed message only.
func writeResourceError(w http.ResponseWriter, message string, logger *slog.Logger) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": message}, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
		return reqID
	}
	return r.Header.Get(requestutil.HeaderRequestID)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
