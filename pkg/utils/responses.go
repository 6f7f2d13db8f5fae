package utils

import (
	"encoding/json"
	"net/http"

	"popcorn-palace/pkg/apperror"
)

// FieldError is one entry of the validationErrors list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error body every failing endpoint returns.
type ErrorResponse struct {
	Status           int          `json:"status"`
	ErrorCode        string       `json:"errorCode"`
	Message          string       `json:"message"`
	Path             string       `json:"path"`
	ValidationErrors []FieldError `json:"validationErrors,omitempty"`
}

// WriteJSON writes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// WriteError renders err as an ErrorResponse. Errors that are not an
// *apperror.Error become a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.From(err)
	if !ok {
		appErr = apperror.Internal(err)
	}

	WriteJSON(w, appErr.Status, ErrorResponse{
		Status:    appErr.Status,
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Path:      r.URL.Path,
	})
}

// WriteValidationError aggregates struct-validation failures into a single
// 400 VALIDATION_ERROR body listing every failing field.
func WriteValidationError(w http.ResponseWriter, r *http.Request, fieldErrors map[string]string) {
	resp := ErrorResponse{
		Status:    http.StatusBadRequest,
		ErrorCode: apperror.CodeValidationError,
		Message:   "Validation failed for one or more fields",
		Path:      r.URL.Path,
	}
	for field, msg := range fieldErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, FieldError{Field: field, Message: msg})
	}

	WriteJSON(w, http.StatusBadRequest, resp)
}
