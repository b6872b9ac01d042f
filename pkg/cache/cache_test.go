package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLRU(capacity int, ttl time.Duration) (*LRUCache, *fakeClock) {
	clk := &fakeClock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	c := NewLRUCache(capacity, ttl)
	c.now = clk.now
	return c, clk
}

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actions func(t *testing.T, c *LRUCache, clk *fakeClock)
	}{
		{
			name: "set and get within TTL",
			actions: func(t *testing.T, c *LRUCache, clk *fakeClock) {
				c.Set(ctx, "a", []byte("1"))
				clk.advance(time.Second - time.Nanosecond)

				v, ok := c.Get(ctx, "a")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name: "expires exactly at TTL",
			actions: func(t *testing.T, c *LRUCache, clk *fakeClock) {
				c.Set(ctx, "a", []byte("1"))
				clk.advance(time.Second)

				_, ok := c.Get(ctx, "a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name: "evicts least recently used",
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				// a становится свежее b
				c.Get(ctx, "a")
				c.Set(ctx, "c", []byte("3"))

				_, ok := c.Get(ctx, "b")
				assert.False(t, ok)
				_, ok = c.Get(ctx, "a")
				assert.True(t, ok)
				_, ok = c.Get(ctx, "c")
				assert.True(t, ok)
			},
		},
		{
			name: "update resets TTL",
			actions: func(t *testing.T, c *LRUCache, clk *fakeClock) {
				c.Set(ctx, "a", []byte("1"))
				clk.advance(700 * time.Millisecond)
				c.Set(ctx, "a", []byte("2"))
				clk.advance(700 * time.Millisecond)

				v, ok := c.Get(ctx, "a")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name: "stored value is isolated from callers",
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				in := []byte("order")
				c.Set(ctx, "a", in)
				in[0] = 'X'

				out, _ := c.Get(ctx, "a")
				out[1] = 'X'

				v, _ := c.Get(ctx, "a")
				assert.Equal(t, "order", string(v))
			},
		},
		{
			name: "cleanup removes only expired",
			actions: func(t *testing.T, c *LRUCache, clk *fakeClock) {
				c.Set(ctx, "old", []byte("1"))
				clk.advance(600 * time.Millisecond)
				c.Set(ctx, "new", []byte("2"))
				clk.advance(500 * time.Millisecond)

				assert.Equal(t, 1, c.cleanup())
				assert.Equal(t, 1, c.Size())
				_, ok := c.Get(ctx, "new")
				assert.True(t, ok)
			},
		},
		{
			name: "delete removes key",
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set(ctx, "a", []byte("1"))
				c.Delete(ctx, "a")
				c.Delete(ctx, "missing")

				_, ok := c.Get(ctx, "a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestLRU(2, time.Second)
			tt.actions(t, c, clk)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	c, clk := newTestLRU(2, time.Second)
	c.Set(context.Background(), "a", []byte("1"))
	clk.advance(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.runJanitor(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	c := NewRedisCache(slog.New(slog.NewTextHandler(io.Discard, nil)), client, "storefront-test", time.Minute)
	t.Cleanup(func() { c.Close() })

	require.NoError(t, c.Start(ctx))

	c.Set(ctx, "a", []byte("1"))
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "1", string(v))

	c.Delete(ctx, "a")
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)

	assert.Equal(t, "storefront-test:order:a", c.key("a"))
}
