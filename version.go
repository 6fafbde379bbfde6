package openshock

import (
	"context"
	"fmt"
)

// backendInfo is the payload of the unauthenticated root endpoint.
type backendInfo struct {
	Version string `json:"version"`
}

// GetVersion returns the version of the OpenShock backend.
// This is the only call that does not require authentication.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	data, err := c.get(ctx, "/1", false)
	if err != nil {
		return "", fmt.Errorf("failed to fetch backend version: %w", err)
	}

	info, err := decodeData[backendInfo](data, "backend version")
	if err != nil {
		return "", fmt.Errorf("failed to fetch backend version: %w", err)
	}

	return info.Version, nil
}
