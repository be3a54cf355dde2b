package bigip

import (
	"fmt"
	"net/url"
)

// iControl addresses a resource as ~partition~name; the tilde is the
// path-escaping convention for names that themselves contain slashes.
// Folder names are partition-qualified full paths already and pass through
// unmodified.

func (c *Client) poolURL(partition, name string) string {
	return fmt.Sprintf("%s/ltm/pool/~%s~%s", c.baseURL, partition, name)
}

func (c *Client) poolMemberURL(partition, pool, member string) string {
	return fmt.Sprintf("%s/ltm/pool/~%s~%s/members/~%s~%s", c.baseURL, partition, pool, partition, member)
}

func (c *Client) nodeURL(partition, name string) string {
	return fmt.Sprintf("%s/ltm/node/~%s~%s", c.baseURL, partition, name)
}

func (c *Client) folderURL(name string) string {
	return fmt.Sprintf("%s/sys/folder/~%s", c.baseURL, name)
}

// partitionFilter builds the collection filter ?$filter=partition eq <value>.
// The space cannot travel unescaped in a request line, so it is sent as %20;
// the $filter key stays literal.
func partitionFilter(collectionURL, partition string) string {
	return fmt.Sprintf("%s?$filter=partition%%20eq%%20%s", collectionURL, url.QueryEscape(partition))
}
