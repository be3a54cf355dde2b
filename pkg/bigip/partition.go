package bigip

import (
	"context"
	"net/http"
)

// GetPartitions returns every administrative folder on the device.
func (c *Client) GetPartitions(ctx context.Context) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.baseURL+"/sys/folder", nil)
}

// GetPartition returns a folder by name.
func (c *Client) GetPartition(ctx context.Context, name string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.folderURL(name), nil)
}

// CreatePartition creates a folder. The name must be a full path: "/Test" for
// a root-level folder, "/Test/Nested" for a nested one. The path goes into
// the body verbatim, no tilde substitution.
func (c *Client) CreatePartition(ctx context.Context, name string) (Resource, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+"/sys/folder", Attributes{"name": name})
}

// DeletePartition deletes a folder if it exists; deleting an absent folder
// returns the probe's 404 payload without sending a DELETE.
func (c *Client) DeletePartition(ctx context.Context, name string) (Resource, error) {
	return c.deleteResource(ctx, c.folderURL(name), func(ctx context.Context) (Resource, error) {
		return c.GetPartition(ctx, name)
	})
}
