package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"alora/shared"
	"alora/shared/constant"
	"alora/transport/http/response"

	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client and user agent inside a fixed window.
// When the counter store is down requests are let through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limits.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)
			key := shared.BuildCacheKey(cacheKeyRateLimit, client, userAgent(r))

			count, err := a.cache.Increment(r.Context(), key, limits.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			if count > int64(limits.MaxRequests) {
				log.Warn().Str("client_ip", client).Int64("count", count).Msg("request limit exceeded")
				response.WithRequestLimitExceeded(w)

				return
			}

			setLimitHeaders(w.Header(), limits.MaxRequests, count, limits.WindowSeconds)

			next.ServeHTTP(w, r)
		})
	}
}

func setLimitHeaders(header http.Header, maxRequests int, count int64, windowSeconds int) {
	header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxRequests))
	header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxRequests)-count), 10))
	header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSeconds))
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// clientIP prefers the originating address of X-Forwarded-For, then X-Real-IP, then the peer.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")

		return strings.TrimSpace(first)
	}

	if realIP := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
