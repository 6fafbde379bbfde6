package openshock

import (
	"context"
	"fmt"
)

// Hub represents an OpenShock hub (a physical controller device that
// groups one or more shockers). Hubs returned by the client carry a
// non-owning back-reference to it so Shockers can delegate; the client's
// lifetime stays with the caller.
type Hub struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedOn string `json:"createdOn"`

	client *Client
}

// Shockers returns the shockers attached to this hub. It is a
// convenience wrapper around Client.ListShockers.
func (h *Hub) Shockers(ctx context.Context) ([]Shocker, error) {
	return h.client.ListShockers(ctx, h)
}

// ListHubs returns all hubs registered to the account, in server order.
// Each call produces fresh Hub values; results are never cached.
func (c *Client) ListHubs(ctx context.Context) ([]Hub, error) {
	data, err := c.get(ctx, "/1/devices", true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hubs: %w", err)
	}

	hubs, err := decodeData[[]Hub](data, "hub list")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hubs: %w", err)
	}

	out := *hubs
	for i := range out {
		out[i].client = c
	}
	return out, nil
}

// GetHub returns a single hub by ID.
func (c *Client) GetHub(ctx context.Context, hubID string) (*Hub, error) {
	if hubID == "" {
		return nil, ErrEmptyHubID
	}

	data, err := c.get(ctx, "/1/devices/"+hubID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hub: %w", err)
	}

	hub, err := decodeData[Hub](data, "hub")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hub: %w", err)
	}
	if hub.ID == "" {
		return nil, fmt.Errorf("failed to fetch hub: %w (no id in response)", ErrMissingData)
	}

	hub.client = c
	return hub, nil
}
