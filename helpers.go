package openshock

import (
	"encoding/json"
	"fmt"
)

// envelope is the response wrapper every OpenShock endpoint uses.
// Data is a pointer so an absent field is distinguishable from a
// present-but-empty value.
type envelope[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// decodeData unmarshals an enveloped response and extracts its data field
// with consistent error formatting. A malformed body and a missing data
// field are distinct failures.
func decodeData[T any](body []byte, resourceName string) (*T, error) {
	var resp envelope[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w (body: %s)", resourceName, err, truncatePreview(body))
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w (%s)", ErrMissingData, resourceName)
	}
	return resp.Data, nil
}

// decodeMessage extracts the top-level message field of a response.
// A missing field is a shape error distinct from malformed JSON.
func decodeMessage(body []byte) (string, error) {
	var resp struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse control response: %w (body: %s)", err, truncatePreview(body))
	}
	if resp.Message == nil {
		return "", ErrMissingMessage
	}
	return *resp.Message, nil
}

// truncatePreview returns a truncated string for error messages.
func truncatePreview(data []byte) string {
	s := string(data)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
