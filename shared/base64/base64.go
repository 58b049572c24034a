// Package base64 packs small JSON values into cookie-safe strings.
package base64

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncodeJSON marshals value and returns it as unpadded URL-safe base64.
func EncodeJSON(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeJSON reverses EncodeJSON into target.
func DecodeJSON(encoded string, target any) error {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode base64 value: %w", err)
	}

	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}
