package bigip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcePaths(t *testing.T) {
	t.Parallel()

	c := NewClient("lb01.example.com", "admin", "secret")

	assert.Equal(t, "https://lb01.example.com/mgmt/tm", c.baseURL)
	assert.Equal(t, "https://lb01.example.com/mgmt/tm/ltm/pool/~Common~web-pool", c.poolURL("Common", "web-pool"))
	assert.Equal(t, "https://lb01.example.com/mgmt/tm/ltm/pool/~Dev~web-pool/members/~Dev~n1:80",
		c.poolMemberURL("Dev", "web-pool", "n1:80"))
	assert.Equal(t, "https://lb01.example.com/mgmt/tm/ltm/node/~Common~n1", c.nodeURL("Common", "n1"))

	// Folder names are full paths already and pass through untouched.
	assert.Equal(t, "https://lb01.example.com/mgmt/tm/sys/folder/~/Dev/Nested", c.folderURL("/Dev/Nested"))
}

func TestPartitionFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://lb/mgmt/tm/ltm/pool?$filter=partition%20eq%20Dev",
		partitionFilter("https://lb/mgmt/tm/ltm/pool", "Dev"))
}
