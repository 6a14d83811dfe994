package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/hbnb-web/internal/models"
)

func newCache(t *testing.T) (PlacesCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), "redis://"+mr.Addr()+"/0", "t:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	t.Parallel()

	c, mr := newCache(t)
	ctx := context.Background()

	in := []models.Place{
		{ID: "1", Title: "A", Price: 10, Amenities: []models.Amenity{{ID: "a", Name: "WiFi"}}},
		{ID: "2", Title: "B", Price: 75},
	}
	require.NoError(t, c.Set(ctx, "anonymous", in, time.Minute))

	require.True(t, mr.Exists("t:anonymous"))
	require.Equal(t, time.Minute, mr.TTL("t:anonymous"))

	got, ok, err := c.Get(ctx, "anonymous")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, got)
}

func TestRedisCache_Miss(t *testing.T) {
	t.Parallel()

	c, _ := newCache(t)

	got, ok, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestRedisCache_Expires(t *testing.T) {
	t.Parallel()

	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "anonymous", []models.Place{{ID: "1"}}, time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "anonymous")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCache_EmptyListIsHit(t *testing.T) {
	t.Parallel()

	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "anonymous", nil, time.Minute))

	got, ok, err := c.Get(ctx, "anonymous")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, got)
}

func TestRedisCache_CorruptedValue(t *testing.T) {
	t.Parallel()

	c, mr := newCache(t)
	mr.HSet("t:anonymous", "v", "{not json")

	_, ok, err := c.Get(context.Background(), "anonymous")
	require.Error(t, err)
	require.False(t, ok)
}

func TestNewRedisCache_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "not-a-url", "")
	require.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisCache(context.Background(), "redis://"+addr, "")
	require.Error(t, err)
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var c PlacesCache = Noop{}
	require.NoError(t, c.Set(context.Background(), "k", []models.Place{{ID: "1"}}, time.Minute))

	_, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, c.Close())
}
