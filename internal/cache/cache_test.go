package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClient_BehavesAsEmptyCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "menu:year:2025", []byte("x"), time.Minute))
	data, err := c.Get(ctx, "menu:year:2025")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "menu:year:2025"))
	n, err := c.Incr(ctx, "menu:year:2025:version")
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestNew_EmptyAddrDisablesCache(t *testing.T) {
	assert.Nil(t, New("", "", 0))
}

func TestUnreachableRedis_FailsSafe(t *testing.T) {
	// nothing listens on port 1; every call must degrade to a miss
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "k"))
	n, err := c.Incr(ctx, "k:version")
	assert.NoError(t, err)
	assert.Zero(t, n)
}
