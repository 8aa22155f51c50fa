package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

const (
	CodeInvalidJSON = "INVALID_JSON"
	CodeInvalidID   = "INVALID_ID"
	CodeInternal    = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error      string                    `json:"error"`
	Message    string                    `json:"message"`
	Errors     []usecase.ValidationError `json:"errors,omitempty"`
	Configured *bool                     `json:"configured,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError maps a use case error onto a status code. Anything that
// is not a DomainError or ErrNotConfigured is a 500 whose detail stays in
// the log.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error, fallback string) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Code == usecase.CodeNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{Error: de.Code, Message: de.Message, Errors: de.Fields})
		return
	}

	if errors.Is(err, usecase.ErrNotConfigured) {
		configured := false
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:      usecase.CodeNotConfigured,
			Message:    err.Error(),
			Configured: &configured,
		})
		return
	}

	log.WithContext(r.Context()).Error("request failed",
		"method", r.Method, "path", r.URL.Path, "error", err)

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		writeErrorResponse(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}
	writeErrorResponse(w, http.StatusInternalServerError, CodeInternal, fallback)
}

// decodeJSON reads the request body into dst and answers 400 itself when
// the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDecodeError(w, err)
		return false
	}
	return true
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be empty.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		writeDecodeError(w, err)
		return false
	}
	return true
}

// writeDecodeError reports a value of the wrong JSON type as a validation
// failure on that field. Any other decode error is INVALID_JSON.
func writeDecodeError(w http.ResponseWriter, err error) {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   usecase.CodeValidation,
			Message: "invalid fields: " + te.Field,
			Errors:  []usecase.ValidationError{{Field: te.Field, Message: "must be a " + jsonKind(te.Type)}},
		})
		return
	}
	writeErrorResponse(w, http.StatusBadRequest, CodeInvalidJSON, "invalid JSON body")
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

// pathID parses a positive integer URL parameter.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeErrorResponse(w, http.StatusBadRequest, CodeInvalidID, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
