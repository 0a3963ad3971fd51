// internal/app/system/jsonapi/jsonapi.go

// Package jsonapi holds the small request/response helpers shared by the
// JSON feature handlers: encode a payload, decode a bounded request body,
// and write the standard error shapes the portal SPA expects.
package jsonapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies; assignment payloads are tiny.
const maxBodyBytes = 1 << 20

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the `{"message": ...}` error shape.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, map[string]string{"message": message})
}

// FieldErrors writes the `{"errors": {field: message}}` shape used for form
// validation failures.
func FieldErrors(w http.ResponseWriter, fields map[string]string) {
	Write(w, http.StatusUnprocessableEntity, map[string]any{"errors": fields})
}

// Decode reads a JSON request body into dst, rejecting unknown junk sizes
// and trailing content.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing content in request body")
	}
	return nil
}
