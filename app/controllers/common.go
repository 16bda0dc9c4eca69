package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// Helper functions for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"message": message})
}

func sendInternalError(w http.ResponseWriter, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	sendError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody decodes the request body into dst and returns the set of
// top-level fields present in the body, so handlers can distinguish an
// absent field from a zero value.
func decodeBody(r *http.Request, dst interface{}) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, err
	}
	return fields, nil
}

// missingField returns the first required field absent from the body, or
// "" when all are present.
func missingField(body map[string]json.RawMessage, required ...string) string {
	for _, field := range required {
		if _, ok := body[field]; !ok {
			return field
		}
	}
	return ""
}

func isValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}
