package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alora/config"
	otelMocks "alora/infras/otel/mocks"
	cacheMocks "alora/shared/cache/mocks"
	"alora/shared/constant"
	"alora/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func rateLimitedConfig(maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		count         int64
		err           error
		wantCode      int
		wantRemaining string
	}{
		{name: "first request", count: 1, wantCode: http.StatusOK, wantRemaining: "4"},
		{name: "last allowed request", count: 5, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", count: 6, wantCode: http.StatusTooManyRequests},
		{name: "cache unavailable", err: errors.New("redis down"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)

			redisCache.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:curl/8.0", 60).Return(tt.count, tt.err)

			handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), rateLimitedConfig(5), redisCache).RateLimit()(okHandler)

			request := httptest.NewRequest(http.MethodGet, "/api/test/", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")
			request.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl)).RateLimit()(okHandler)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://alora.test"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil).CORS()(okHandler)

	request := httptest.NewRequest(http.MethodGet, "/api/test/", nil)
	request.Header.Set("Origin", "https://alora.test")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "https://alora.test", recorder.Header().Get("Access-Control-Allow-Origin"))

	request = httptest.NewRequest(http.MethodGet, "/api/test/", nil)
	request.Header.Set("Origin", "https://elsewhere.test")

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing_PassesThrough(t *testing.T) {
	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil).Tracing(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}
