// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// Response is the uniform result envelope. Success responses carry data;
// failures carry a human-readable message and never partial data.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// OK builds a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail builds a failure envelope.
func Fail(message, code string) Response {
	return Response{Success: false, Message: message, Code: code}
}

// ParseDate accepts the two date shapes clients send: a bare date or a full
// RFC 3339 timestamp. An empty string yields the zero time with no error.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
