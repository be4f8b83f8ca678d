// Package respond provides the shared JSON response envelopes and the
// central error pipeline. Every handler failure funnels through Error, which
// maps domain errors to a stable {"status":"error"} body; internals are
// logged, never returned to the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oakhq/fielddex/internal/apperr"
)

// SuccessEnvelope is the uniform success shape: status, payload, optional
// message.
type SuccessEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorEnvelope is the uniform error shape produced by the pipeline.
type ErrorEnvelope struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes an arbitrary payload without the envelope. Used by the meta
// endpoints (root info, health) whose shapes predate the envelope contract.
func JSON(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, v)
}

// Success writes a success envelope with the given status code.
func Success(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, SuccessEnvelope{Status: "success", Data: data, Message: message})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ValidationFailure keeps the contract's flat 400 body for schema
// violations: {"error": "<joined message string>"}.
func ValidationFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// Error is the central error pipeline. Typed domain errors map to their
// status/code; validation errors keep the flat body; everything else is
// coerced to a generic 500 with the original message logged server-side.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err == nil {
		logger.Error("error pipeline received nil", "error", "null or undefined error received")
		writeUnknown(w)
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		logger.Error("request failed", "code", appErr.Code, "error", appErr.Message)
		if appErr.Code == apperr.CodeValidation {
			ValidationFailure(w, appErr.Message)
			return
		}
		writeJSON(w, appErr.Status, ErrorEnvelope{
			Status: "error",
			Error:  ErrorDetail{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	logger.Error("unexpected error", "error", err)
	writeUnknown(w)
}

func writeUnknown(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorEnvelope{
		Status: "error",
		Error: ErrorDetail{
			Code:    apperr.CodeUnknown,
			Message: "An unexpected error occurred.",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
