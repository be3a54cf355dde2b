package bigip

import "encoding/json"

// Attributes is a pass-through write payload. The server decides which keys
// are meaningful; the client does not validate them. Nodes require "name" and
// "address", pools require "name".
type Attributes map[string]any

// Resource is one decoded JSON response body. iControl reports failures
// in-band: a body carrying "code" and/or "errorStack" is an error payload
// even on a 2xx response.
type Resource map[string]any

// APIError is the in-band error payload of an iControl response.
type APIError struct {
	Code       int
	Message    string
	ErrorStack []string
}

// APIError returns the decoded in-band error, or nil when the body carries no
// error indicator.
func (r Resource) APIError() *APIError {
	code, hasCode := r.code()
	stack, hasStack := r["errorStack"]

	if !hasCode && !hasStack {
		return nil
	}

	apiErr := &APIError{Code: code}

	if msg, ok := r["message"].(string); ok {
		apiErr.Message = msg
	}

	if lines, ok := stack.([]any); ok {
		for _, l := range lines {
			if s, ok := l.(string); ok {
				apiErr.ErrorStack = append(apiErr.ErrorStack, s)
			}
		}
	}

	return apiErr
}

// IsNotFound reports whether the body is a 404 error payload.
func (r Resource) IsNotFound() bool {
	apiErr := r.APIError()
	return apiErr != nil && apiErr.Code == 404
}

// code handles the two shapes a code can arrive in: a JSON number from the
// wire, or a Go int in a payload synthesized client-side.
func (r Resource) code() (int, bool) {
	switch v := r["code"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

// items returns the "items" collection of a list response, nil when absent.
func (r Resource) items() []any {
	items, _ := r["items"].([]any)
	return items
}
