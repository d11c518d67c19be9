package syncauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAuth_HostKey(t *testing.T) {
	// hex(sha1("user@example.com:secret"))
	key, err := DeriveAuth{}.HostKey(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bbfd77dd4586bd107a4f545a073dec1b204efa9f", key)
}

func TestDeriveAuth_HostKeyIsDeterministic(t *testing.T) {
	a, err := DeriveAuth{}.HostKey(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "dcea6d9ccd3d20ba1549f6d9b5dde60742158882", a)

	b, err := DeriveAuth{}.HostKey(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
