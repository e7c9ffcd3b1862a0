package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// incrWithTTL bumps the counter and sets its window atomically, so a crash
// between the two can never leave an immortal counter behind
var incrWithTTL = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RateLimit throttles requests per client IP using a shared TTL counter in
// redis, so the limit holds across restarts and multiple instances. Redis
// being down fails open: throttling is protection, not a dependency.
func RateLimit(rdb *redis.Client, logger *zap.Logger, prefix string, limit int64, window time.Duration) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s:%s", prefix, host)

			count, err := incrWithTTL.Run(r.Context(), rdb, []string{key}, int(window.Seconds())).Int64()
			if err != nil {
				logger.Warn("rate limit counter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
