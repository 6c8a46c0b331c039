package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "candidate:"), mr
}

type candidateSummary struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestCacheHelper_SetAndGet(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	in := candidateSummary{Name: "Aarav Sharma", Score: 85}
	require.NoError(t, helper.Set(ctx, "search:ai", in, time.Minute))

	var out candidateSummary
	require.NoError(t, helper.Get(ctx, "search:ai", &out))
	assert.Equal(t, in, out)
}

func TestCacheHelper_Get_Miss(t *testing.T) {
	helper, _ := newTestHelper(t)

	var out candidateSummary
	err := helper.Get(context.Background(), "search:missing", &out)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheHelper_NilClient_Degrades(t *testing.T) {
	helper := NewCacheHelper(nil, "candidate:")
	ctx := context.Background()

	assert.NoError(t, helper.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, helper.Delete(ctx, "k"))
	assert.NoError(t, helper.InvalidatePattern(ctx, "*"))

	var out string
	assert.ErrorIs(t, helper.Get(ctx, "k", &out), ErrCacheNotAvailable)
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper, mr := newTestHelper(t)
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "search:ai", "a", time.Minute))
	require.NoError(t, helper.Set(ctx, "search:web", "b", time.Minute))
	require.NoError(t, helper.Set(ctx, "profile:1", "c", time.Minute))

	require.NoError(t, helper.InvalidatePattern(ctx, "search:*"))

	assert.False(t, mr.Exists("candidate:search:ai"))
	assert.False(t, mr.Exists("candidate:search:web"))
	assert.True(t, mr.Exists("candidate:profile:1"))
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return candidateSummary{Name: "Diya Patel", Score: 72}, nil
	}

	var first candidateSummary
	require.NoError(t, helper.CacheOrExecute(ctx, "search:web", &first, time.Minute, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Diya Patel", first.Name)

	// The async cache write may still be in flight, so seed it directly
	// before reading again.
	require.NoError(t, helper.Set(ctx, "search:web", first, time.Minute))

	var second candidateSummary
	require.NoError(t, helper.CacheOrExecute(ctx, "search:web", &second, time.Minute, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}
