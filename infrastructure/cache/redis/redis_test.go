package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (ForecastCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewForecastCache(client, ttl), mr
}

func sampleForecast() *domain.Forecast {
	return &domain.Forecast{
		GeneratedAt: time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC),
		HistoryDays: 12,
		TotalSales:  40,
		Points: []domain.ForecastPoint{
			{Date: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), Predicted: 3.5, LowerBound: 1.2, UpperBound: 5.8},
		},
	}
}

func TestForecastCache_SetThenGet(t *testing.T) {
	cache, mr := newTestCache(t, 26*time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.SetForecast(ctx, sampleForecast()))

	got, err := cache.GetForecast(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 40, got.TotalSales)
	assert.True(t, sampleForecast().GeneratedAt.Equal(got.GeneratedAt))
	require.Len(t, got.Points, 1)
	assert.InDelta(t, 3.5, got.Points[0].Predicted, 1e-9)

	assert.Equal(t, 26*time.Hour, mr.TTL(ForecastKey))
}

func TestForecastCache_MissAndExpiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	got, err := cache.GetForecast(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.SetForecast(ctx, sampleForecast()))
	mr.FastForward(2 * time.Hour)

	got, err = cache.GetForecast(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestForecastCache_CorruptEntryIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	require.NoError(t, mr.Set(ForecastKey, "{not json"))

	got, err := cache.GetForecast(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestForecastCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	mr.Close()

	_, err := cache.GetForecast(context.Background())
	assert.Error(t, err)
}

func TestNewForecastCache_NoClientIsNoop(t *testing.T) {
	assert.Nil(t, NewClient(config.Redis{}))

	cache := NewForecastCache(nil, time.Hour)
	require.NoError(t, cache.SetForecast(context.Background(), sampleForecast()))

	got, err := cache.GetForecast(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}
