package bigip

import (
	"context"
	"net/http"
	"strings"
)

// Session values understood by the member and node sub-resources.
const (
	sessionEnabled  = "user-enabled"
	sessionDisabled = "user-disabled"
)

func orCommon(partition string) string {
	if partition == "" {
		return defaultPartition
	}

	return partition
}

// GetPools returns every pool on the device.
func (c *Client) GetPools(ctx context.Context) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.baseURL+"/ltm/pool/", nil)
}

// GetPoolsInPartition returns the pools in one partition.
func (c *Client) GetPoolsInPartition(ctx context.Context, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, partitionFilter(c.baseURL+"/ltm/pool", orCommon(partition)), nil)
}

// GetPool returns a pool by name. In the default mode a missing pool comes
// back as a 404 error payload, not a Go error; check Resource.APIError before
// treating the result as found.
func (c *Client) GetPool(ctx context.Context, name, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.poolURL(orCommon(partition), name)+"/", nil)
}

// CreatePool creates a pool from the given attributes. "name" is required;
// "partition" defaults server-side to Common. All other keys pass through
// untouched.
func (c *Client) CreatePool(ctx context.Context, attrs Attributes) (Resource, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+"/ltm/pool", attrs)
}

// ModifyPool PUTs the given attributes onto a pool. Only the keys present are
// changed, except "members", which the server treats as the complete member
// list.
func (c *Client) ModifyPool(ctx context.Context, name, partition string, attrs Attributes) (Resource, error) {
	return c.do(ctx, http.MethodPut, c.poolURL(orCommon(partition), name), attrs)
}

// DeletePool deletes a pool if it exists. Deleting an absent pool is not an
// error: the 404 payload from the existence probe is returned as-is and no
// DELETE is sent. A confirmed delete returns an empty Resource.
func (c *Client) DeletePool(ctx context.Context, name, partition string) (Resource, error) {
	return c.deleteResource(ctx, c.poolURL(orCommon(partition), name), func(ctx context.Context) (Resource, error) {
		return c.GetPool(ctx, name, partition)
	})
}

// GetPoolMembers returns the member collection of a pool under "items".
func (c *Client) GetPoolMembers(ctx context.Context, name, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.poolURL(orCommon(partition), name)+"/members/", nil)
}

// GetPoolStats returns the statistics sub-resource of a pool.
func (c *Client) GetPoolStats(ctx context.Context, name, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.poolURL(orCommon(partition), name)+"/stats", nil)
}

// GetPoolMemberState returns one member sub-resource. Unlike RemovePoolMember,
// the member name must carry its port ("node:80"); the member endpoint has no
// port-less form.
func (c *Client) GetPoolMemberState(ctx context.Context, pool, memberName, partition string) (Resource, error) {
	return c.do(ctx, http.MethodGet, c.poolMemberURL(orCommon(partition), pool, memberName)+"/", nil)
}

// AddPoolMembers appends newMembers to a pool's member list. The server
// stores the list whole, so the current members are fetched first and resent
// with the new ones appended; sending only the additions would truncate the
// pool. Order is preserved and duplicate names are kept as-is.
//
// Each new member needs a "name" of the form "node:port". The client does not
// validate this; a malformed name surfaces as a server-side error payload.
//
// Two clients reconciling the same pool concurrently can lose each other's
// update: the list read by one may be stale by the time it writes. The
// protocol offers no compare-and-swap, so this window is accepted.
func (c *Client) AddPoolMembers(ctx context.Context, pool string, newMembers []Attributes, partition string) (Resource, error) {
	current, err := c.GetPoolMembers(ctx, pool, partition)
	if err != nil {
		return nil, err
	}

	members := append([]any{}, current.items()...)
	for _, m := range newMembers {
		members = append(members, m)
	}

	return c.ModifyPool(ctx, pool, partition, Attributes{"members": members})
}

// RemovePoolMember removes the first member whose node name matches
// memberName. Ports are ignored on both sides of the comparison, so
// "node1" and "node1:8080" remove the same member. Only the first match is
// removed; later members with the same node name stay.
//
// When the pool has no members, or no member matches, a client-side 400
// payload is returned and nothing is written.
func (c *Client) RemovePoolMember(ctx context.Context, pool, memberName, partition string) (Resource, error) {
	current, err := c.GetPoolMembers(ctx, pool, partition)
	if err != nil {
		return nil, err
	}

	members := current.items()
	if len(members) == 0 {
		return Resource{"code": 400, "message": "No Members in Pool."}, nil
	}

	target, _, _ := strings.Cut(memberName, ":")

	index := -1

	for i, m := range members {
		attrs, ok := m.(map[string]any)
		if !ok {
			continue
		}

		name, _ := attrs["name"].(string)

		node, _, _ := strings.Cut(name, ":")
		if node == target {
			index = i
			break
		}
	}

	if index < 0 {
		return Resource{"code": 400, "message": "Member not in Pool."}, nil
	}

	members = append(members[:index], members[index+1:]...)

	return c.ModifyPool(ctx, pool, partition, Attributes{"members": members})
}

// ModifyPoolMember PUTs attributes onto one member sub-resource directly; the
// pool's member list is not rewritten. memberName must carry its port. The
// member PUT endpoint takes the bare member name, unlike the state GET.
func (c *Client) ModifyPoolMember(ctx context.Context, pool, memberName, partition string, attrs Attributes) (Resource, error) {
	return c.do(ctx, http.MethodPut, c.poolURL(orCommon(partition), pool)+"/members/"+memberName, attrs)
}

// EnablePoolMember sets a member's session to user-enabled. memberName must
// carry its port.
func (c *Client) EnablePoolMember(ctx context.Context, pool, memberName, partition string) (Resource, error) {
	return c.ModifyPoolMember(ctx, pool, memberName, partition, Attributes{"session": sessionEnabled})
}

// DisablePoolMember sets a member's session to user-disabled. memberName must
// carry its port.
func (c *Client) DisablePoolMember(ctx context.Context, pool, memberName, partition string) (Resource, error) {
	return c.ModifyPoolMember(ctx, pool, memberName, partition, Attributes{"session": sessionDisabled})
}
