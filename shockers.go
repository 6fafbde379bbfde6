package openshock

import (
	"context"
	"fmt"
)

// Shocker represents an individually addressable remote-control unit
// attached to a hub. It is a pure value record with no behavior.
type Shocker struct {
	ID        string `json:"id"`
	RFID      string `json:"rfId"`
	Model     string `json:"model"`
	Name      string `json:"name"`
	IsPaused  bool   `json:"isPaused"`
	CreatedOn string `json:"createdOn"`
}

// shockerGroup is one per-hub grouping in the owned-shockers response.
// Shockers is a pointer so an absent field is a shape error, not an
// empty result.
type shockerGroup struct {
	ID       string     `json:"id"`
	Shockers *[]Shocker `json:"shockers"`
}

// ListShockers returns the shockers attached to the given hub, in server
// order. The owned-shockers endpoint returns every hub's shockers grouped
// by hub; the first grouping whose ID matches wins.
func (c *Client) ListShockers(ctx context.Context, hub *Hub) ([]Shocker, error) {
	if hub == nil || hub.ID == "" {
		return nil, ErrEmptyHubID
	}

	data, err := c.get(ctx, "/1/shockers/own", true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shockers: %w", err)
	}

	groups, err := decodeData[[]shockerGroup](data, "shocker list")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shockers: %w", err)
	}

	for _, group := range *groups {
		if group.ID != hub.ID {
			continue
		}
		if group.Shockers == nil {
			return nil, fmt.Errorf("failed to fetch shockers: %w (group %q has no shockers field)", ErrMissingData, group.ID)
		}
		return *group.Shockers, nil
	}

	return nil, fmt.Errorf("failed to fetch shockers: %w (hub %q)", ErrHubNotFound, hub.ID)
}
