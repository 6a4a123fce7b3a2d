package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/rigdesc/internal/codec"
	"github.com/nerrad567/rigdesc/internal/instrument"
)

// Error represents a structured error response.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`

	// Set for instrument_validation errors.
	Invariant string `json:"invariant,omitempty"`
	Field     string `json:"field,omitempty"`
	Component string `json:"component,omitempty"`
}

// Common error codes.
const (
	ErrCodeBadRequest           = "bad_request"
	ErrCodeNotFound             = "not_found"
	ErrCodeUnauthorized         = "unauthorised"
	ErrCodeForbidden            = "forbidden"
	ErrCodeInternal             = "internal_error"
	ErrCodeTooLarge             = "request_too_large"
	ErrCodeMalformedInput       = "malformed_input"
	ErrCodeSchemaValidation     = "schema_validation"
	ErrCodeInstrumentValidation = "instrument_validation"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeDocument writes canonical document text unchanged.
func writeDocument(w http.ResponseWriter, status int, doc []byte, digest string) {
	w.Header().Set("Content-Type", "application/json")
	if digest != "" {
		w.Header().Set("X-Document-Digest", digest)
	}
	w.WriteHeader(status)
	//nolint:errcheck // Best-effort write to response; connection may be closed
	w.Write(doc)
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// writeNotFound writes a 404 error response.
func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// writeUnauthorized writes a 401 error response.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="rigdesc"`)
	writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// writeForbidden writes a 403 error response.
func writeForbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, ErrCodeForbidden, message)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// documentError converts a codec error into a 422 response body.
func documentError(err error) Error {
	e := Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    ErrCodeSchemaValidation,
		Message: err.Error(),
	}

	var verr *instrument.ValidationError
	switch {
	case errors.Is(err, codec.ErrMalformedInput):
		e.Code = ErrCodeMalformedInput
	case errors.As(err, &verr):
		e.Code = ErrCodeInstrumentValidation
		e.Invariant = string(verr.Invariant)
		e.Field = verr.Field
		e.Component = verr.Component
	}
	return e
}

// writeDocumentError writes a 422 response for a rejected document.
func writeDocumentError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, documentError(err))
}
