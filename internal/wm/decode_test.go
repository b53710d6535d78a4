package wm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClientsSkipsUnmapped(t *testing.T) {
	clients, err := decodeClients([]byte(clientsJSON))
	require.NoError(t, err)

	want := []Client{
		{Address: "0x55d0a1b2c3d0", Class: "kitty", Title: "htop", InitialTitle: "kitty", Workspace: Workspace{ID: 2, Name: "2"}},
		{Address: "0x55d0a1b2c3f0", Class: "org.gnome.Terminal", Title: "user@host: ~", InitialTitle: "dropdown", Workspace: Workspace{ID: -98, Name: "special:hyprdrop"}},
	}
	if diff := cmp.Diff(want, clients); diff != "" {
		t.Fatalf("clients mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := decodeClients([]byte("not json"))
	assert.Error(t, err)
	_, err = decodeWorkspace([]byte("{"))
	assert.Error(t, err)
}

func TestCheckReply(t *testing.T) {
	assert.NoError(t, checkReply([]string{"bringactivetotop"}, []byte("ok\n")))

	err := checkReply([]string{"movetoworkspace", "5,class:^x$"}, []byte("Invalid dispatcher"))
	require.Error(t, err)
	assert.Equal(t, "dispatch movetoworkspace 5,class:^x$: Invalid dispatcher", err.Error())

	assert.EqualError(t, checkReply([]string{"exec", "x"}, nil), "dispatch exec x: empty reply")
}

func TestWorkspaceIsSpecial(t *testing.T) {
	assert.True(t, Workspace{ID: -98, Name: "special:hyprdrop"}.IsSpecial("hyprdrop"))
	assert.True(t, Workspace{ID: -98, Name: "hyprdrop"}.IsSpecial("hyprdrop"))
	assert.False(t, Workspace{ID: -97, Name: "special:other"}.IsSpecial("hyprdrop"))
	assert.False(t, Workspace{ID: 3, Name: "3"}.IsSpecial("hyprdrop"))
}

func TestFindByAddress(t *testing.T) {
	clients := []Client{{Address: "0x1"}, {Address: "0x2", Class: "b"}}

	c, ok := FindByAddress(clients, "0x2")
	require.True(t, ok)
	assert.Equal(t, "b", c.Class)

	_, ok = FindByAddress(clients, "")
	assert.False(t, ok)
	_, ok = FindByAddress(nil, "0x2")
	assert.False(t, ok)
}
