package kiosk

import (
	"net/http"
	"strings"
)

// result is the generic {success, error, message} acknowledgement most
// mutating endpoints return.
type result struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// err converts an in-band failure (HTTP 200 with error or success=false)
// into an APIError.
func (r result) err(path string) error {
	msg := strings.TrimSpace(r.Error)
	if msg == "" && r.Success != nil && !*r.Success {
		msg = strings.TrimSpace(r.Message)
		if msg == "" {
			msg = "request failed"
		}
	}
	if msg == "" {
		return nil
	}
	return &APIError{Path: path, Status: http.StatusOK, Message: msg}
}
