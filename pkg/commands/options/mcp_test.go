package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPOptions(t *testing.T) {
	o := &MCPOptions{Path: "diary", Host: " ", Port: 9090}
	assert.Equal(t, "/diary", o.EndpointPath())
	addr, err := o.ListenAddr()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", addr)

	o.Port = 70000
	_, err = o.ListenAddr()
	assert.Error(t, err)

	assert.Equal(t, "/mcp", (&MCPOptions{}).EndpointPath())
}
