package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadersSet(t *testing.T) {
	var h Headers
	require.NoError(t, h.Set("X-One: 1"))
	require.NoError(t, h.Set("Authorization: Bearer abc"))
	require.Error(t, h.Set("no colon here"))
	require.Error(t, h.Set(" : value"))
	require.Error(t, h.Set(":value"))

	require.Equal(t, Headers{"X-One: 1", "Authorization: Bearer abc"}, h)
	require.Equal(t, "header", h.Type())
}

func TestHeadersApply(t *testing.T) {
	h := Headers{"Host: override.example.com", "X-Added: yes", "X-Added: twice"}

	got := h.Apply(map[string]string{"Host": "www.example.com", "Accept": "*/*"})
	require.Equal(t, map[string]string{
		"Host":    "override.example.com",
		"Accept":  "*/*",
		"X-Added": "twice",
	}, got)

	require.Equal(t, map[string]string{"Host": "override.example.com", "X-Added": "twice"}, h.Apply(nil))
}
