package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyURIDisablesCache(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNew_InvalidURI(t *testing.T) {
	_, err := New("not a redis url")
	assert.Error(t, err)
}

func TestCache_NilIsDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest map[string]int
	hit, err := c.GetJSON(ctx, "analytics", &dest)
	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrCacheDisabled)

	assert.ErrorIs(t, c.SetJSON(ctx, "analytics", map[string]int{"a": 1}, time.Second), ErrCacheDisabled)
	assert.ErrorIs(t, c.Delete(ctx, "analytics"), ErrCacheDisabled)
	assert.NoError(t, c.Close())
}

func TestCache_NamespaceKey(t *testing.T) {
	c := &Cache{}
	assert.Equal(t, "shutterpost:analytics", c.namespaceKey("analytics"))
}
