package redis_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/bookstore/internal/infra/redis"
	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

type countingReader struct {
	categories map[uuid.UUID]*category.Category
	calls      int
	err        error
	// nilOnMiss reports unknown ids as (nil, nil) instead of ErrCategoryNotFound
	nilOnMiss bool
}

func (r *countingReader) Read(_ context.Context, id uuid.UUID) (*category.Category, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.categories[id]
	if !ok {
		if r.nilOnMiss {
			return nil, nil
		}
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func setupCache(t *testing.T, reader *countingReader) (*redis.CategoryCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logger.New("test", io.Discard)
	return redis.NewCategoryCache(client, reader, time.Minute, log), mr
}

func newReader() (*countingReader, *category.Category) {
	c := &category.Category{
		ID:        uuid.New(),
		Name:      "Papelería",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	return &countingReader{categories: map[uuid.UUID]*category.Category{c.ID: c}}, c
}

func TestCategoryCache_ReadThrough(t *testing.T) {
	reader, want := newReader()
	cache, mr := setupCache(t, reader)
	ctx := context.Background()

	got, err := cache.Read(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, 1, reader.calls)
	assert.True(t, mr.Exists(redis.KeyPrefix+want.ID.String()))

	got, err = cache.Read(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, 1, reader.calls, "second read should be served from redis")
}

func TestCategoryCache_TTL(t *testing.T) {
	reader, want := newReader()
	cache, mr := setupCache(t, reader)
	ctx := context.Background()

	_, err := cache.Read(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL(redis.KeyPrefix+want.ID.String()))

	mr.FastForward(2 * time.Minute)

	_, err = cache.Read(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls)
}

func TestCategoryCache_MissIsNotCached(t *testing.T) {
	reader, _ := newReader()
	cache, mr := setupCache(t, reader)
	ctx := context.Background()
	missing := uuid.New()

	_, err := cache.Read(ctx, missing)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.False(t, mr.Exists(redis.KeyPrefix+missing.String()))

	_, err = cache.Read(ctx, missing)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Equal(t, 2, reader.calls)
}

func TestCategoryCache_NilMissIsNotCached(t *testing.T) {
	reader, _ := newReader()
	reader.nilOnMiss = true
	cache, mr := setupCache(t, reader)
	ctx := context.Background()
	missing := uuid.New()

	var got *category.Category
	var err error
	require.NotPanics(t, func() { got, err = cache.Read(ctx, missing) })
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(redis.KeyPrefix+missing.String()))

	_, err = cache.Read(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls)
}

func TestCategoryCache_Invalidate(t *testing.T) {
	reader, want := newReader()
	cache, mr := setupCache(t, reader)
	ctx := context.Background()

	_, err := cache.Read(ctx, want.ID)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, want.ID))
	assert.False(t, mr.Exists(redis.KeyPrefix+want.ID.String()))

	want.Name = "Arte"
	got, err := cache.Read(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arte", got.Name)
}

func TestCategoryCache_RedisDownFallsThrough(t *testing.T) {
	reader, want := newReader()
	cache, mr := setupCache(t, reader)
	ctx := context.Background()

	mr.Close()

	got, err := cache.Read(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Error(t, cache.Health(ctx))
}

func TestCategoryCache_ReaderErrorPropagates(t *testing.T) {
	reader, want := newReader()
	reader.err = errors.New("db down")
	cache, _ := setupCache(t, reader)

	_, err := cache.Read(context.Background(), want.ID)
	assert.EqualError(t, err, "db down")
}

func TestCategoryCache_CorruptEntryReloads(t *testing.T) {
	reader, want := newReader()
	cache, mr := setupCache(t, reader)

	require.NoError(t, mr.Set(redis.KeyPrefix+want.ID.String(), "{not json"))

	got, err := cache.Read(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, 1, reader.calls)
}
