package bigip

import (
	"context"
	"net/http"
)

// GetNodes returns every node on the device.
func (c *Client) GetNodes(ctx context.Context) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.baseURL+"/ltm/node", nil)
}

// GetNodesInPartition returns the nodes in one partition.
func (c *Client) GetNodesInPartition(ctx context.Context, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, partitionFilter(c.baseURL+"/ltm/node/", orCommon(partition)), nil)
}

// GetNode returns a node by name. A missing node comes back as a 404 error
// payload in the default mode.
func (c *Client) GetNode(ctx context.Context, name, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.nodeURL(orCommon(partition), name), nil)
}

// CreateNode creates a node from the given attributes. "name" and "address"
// are required.
func (c *Client) CreateNode(ctx context.Context, attrs Attributes) (Resource, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+"/ltm/node", attrs)
}

// ModifyNode PUTs the given attributes onto a node.
func (c *Client) ModifyNode(ctx context.Context, name, partition string, attrs Attributes) (Resource, error) {
	return c.do(ctx, http.MethodPut, c.nodeURL(orCommon(partition), name), attrs)
}

// DeleteNode deletes a node if it exists; deleting an absent node returns the
// probe's 404 payload without sending a DELETE.
func (c *Client) DeleteNode(ctx context.Context, name, partition string) (Resource, error) {
	return c.deleteResource(ctx, c.nodeURL(orCommon(partition), name), func(ctx context.Context) (Resource, error) {
		return c.GetNode(ctx, name, partition)
	})
}

// GetNodeStats returns the statistics sub-resource of a node.
func (c *Client) GetNodeStats(ctx context.Context, name, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.nodeURL(orCommon(partition), name)+"/stats", nil)
}

// EnableNode sets a node's session to user-enabled, admitting new traffic.
func (c *Client) EnableNode(ctx context.Context, name, partition string) (Resource, error) {
	return c.ModifyNode(ctx, name, partition, Attributes{"session": sessionEnabled})
}

// DisableNode sets a node's session to user-disabled; existing connections
// drain, new ones are refused.
func (c *Client) DisableNode(ctx context.Context, name, partition string) (Resource, error) {
	return c.ModifyNode(ctx, name, partition, Attributes{"session": sessionDisabled})
}
