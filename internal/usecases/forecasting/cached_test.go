package forecasting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	cachemocks "github.com/vfg2006/banarsibot-api/infrastructure/cache/redis/mocks"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/internal/usecases/forecasting/mocks"
)

func TestCachedService_Latest(t *testing.T) {
	cached := &domain.Forecast{TotalSales: 7}
	fresh := &domain.Forecast{TotalSales: 9}

	tests := []struct {
		name    string
		refresh bool
		setup   func(f *mocks.MockForecaster, c *cachemocks.MockForecastCache)
		want    *domain.Forecast
		wantErr error
	}{
		{
			name: "cache hit skips computation",
			setup: func(f *mocks.MockForecaster, c *cachemocks.MockForecastCache) {
				c.EXPECT().GetForecast(gomock.Any()).Return(cached, nil)
				f.EXPECT().Forecast(gomock.Any()).Times(0)
			},
			want: cached,
		},
		{
			name: "cache miss computes and stores",
			setup: func(f *mocks.MockForecaster, c *cachemocks.MockForecastCache) {
				c.EXPECT().GetForecast(gomock.Any()).Return(nil, nil)
				f.EXPECT().Forecast(gomock.Any()).Return(fresh, nil)
				c.EXPECT().SetForecast(gomock.Any(), fresh).Return(nil)
			},
			want: fresh,
		},
		{
			name:    "refresh bypasses cache read",
			refresh: true,
			setup: func(f *mocks.MockForecaster, c *cachemocks.MockForecastCache) {
				c.EXPECT().GetForecast(gomock.Any()).Times(0)
				f.EXPECT().Forecast(gomock.Any()).Return(fresh, nil)
				c.EXPECT().SetForecast(gomock.Any(), fresh).Return(nil)
			},
			want: fresh,
		},
		{
			name: "cache errors degrade to computation",
			setup: func(f *mocks.MockForecaster, c *cachemocks.MockForecastCache) {
				c.EXPECT().GetForecast(gomock.Any()).Return(nil, errors.New("redis: connection refused"))
				f.EXPECT().Forecast(gomock.Any()).Return(fresh, nil)
				c.EXPECT().SetForecast(gomock.Any(), fresh).Return(errors.New("redis: connection refused"))
			},
			want: fresh,
		},
		{
			name: "forecast error is returned and nothing is cached",
			setup: func(f *mocks.MockForecaster, c *cachemocks.MockForecastCache) {
				c.EXPECT().GetForecast(gomock.Any()).Return(nil, nil)
				f.EXPECT().Forecast(gomock.Any()).Return(nil, ErrNoHistory)
				c.EXPECT().SetForecast(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: ErrNoHistory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			forecaster := mocks.NewMockForecaster(ctrl)
			cache := cachemocks.NewMockForecastCache(ctrl)
			tt.setup(forecaster, cache)

			got, err := NewCachedService(forecaster, cache).Latest(context.Background(), tt.refresh)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}
