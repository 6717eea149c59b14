package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DecodeJSONRequest reads and strictly decodes a JSON request body into dst,
// rejecting unknown fields.
func DecodeJSONRequest(r *http.Request, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
