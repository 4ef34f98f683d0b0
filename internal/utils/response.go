package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"FITTRACK_BACK-END/internal/dto"
)

// maxJSONBodyBytes caps JSON request bodies
const maxJSONBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// DecodeJSONRequest decodes the request body into dst. On failure it writes a 400
// response and returns the error, so callers only need to return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", msg)
		return err
	}
	return nil
}
