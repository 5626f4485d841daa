package api

import (
	"encoding/json"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the search service.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the body's msg field when present, else the HTTP
	// status text.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Msg != "" {
		apiErr.Message = payload.Msg
	}
	return apiErr
}
