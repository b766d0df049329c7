package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/shared/cache"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/transport/http/middleware"
)

func newAppMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache), mockCache
}

func TestAppMiddleware_Tracing(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "lodge"

	mw, _ := newAppMiddleware(t, cfg)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		w.WriteHeader(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/roomtypes", nil)

	mw.Tracing(next).ServeHTTP(recorder, request)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name      string
		enabled   bool
		setupMock func(*cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name:      "disabled limiter passes requests through",
			enabled:   false,
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusNoContent,
		},
		{
			name:    "first request within the window is allowed",
			enabled: true,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), 1, 60).
					Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:    "request over the limit is rejected",
			enabled: true,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ string, value any) error {
						count, _ := value.(*int)
						*count = 2

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:    "cache failure lets the request through",
			enabled: true,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assert.AnError)
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enabled
			cfg.App.RateLimiter.MaxRequests = 2
			cfg.App.RateLimiter.WindowSeconds = 60

			mw, mockCache := newAppMiddleware(t, cfg)
			tt.setupMock(mockCache)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/v1/records", nil)

			mw.RateLimit()(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
