package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/Naveen122004/portfolio-service/internal/config"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

const (
	limiterMaxBuckets = 10000
	limiterIdleTTL    = 10 * time.Minute
)

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// submissionLimiter holds one token bucket per client IP. The map is bounded:
// once it reaches maxBuckets, idle entries are evicted before a new IP is
// admitted, so a flood of distinct addresses cannot grow it without limit.
type submissionLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*ipBucket
	limit      rate.Limit
	burst      int
	maxBuckets int
	idleTTL    time.Duration
}

func newSubmissionLimiter(perMinute, burst int) *submissionLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}
	if burst <= 0 {
		burst = 3
	}
	return &submissionLimiter{
		buckets:    make(map[string]*ipBucket),
		limit:      rate.Limit(float64(perMinute) / 60.0),
		burst:      burst,
		maxBuckets: limiterMaxBuckets,
		idleTTL:    limiterIdleTTL,
	}
}

func (l *submissionLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		if len(l.buckets) >= l.maxBuckets {
			l.evictIdle(now)
		}
		b = &ipBucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// evictIdle drops buckets past their idle TTL; callers hold the lock. If every
// bucket is still active the map is reset wholesale, trading a one-off burst
// allowance for a hard memory bound.
func (l *submissionLimiter) evictIdle(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, ip)
		}
	}
	if len(l.buckets) >= l.maxBuckets {
		l.buckets = make(map[string]*ipBucket)
	}
}

// SubmissionRateLimiter returns a per-IP token bucket guarding the public
// submission endpoints against drive-by flooding. Validation still happens
// downstream; this only bounds request volume.
func SubmissionRateLimiter(cfg config.SubmissionConfig) fiber.Handler {
	limiter := newSubmissionLimiter(cfg.RatePerMinute, cfg.Burst)
	return func(c *fiber.Ctx) error {
		if !limiter.allow(c.IP(), time.Now()) {
			return apperrors.NewDomainError("RATE_LIMITED", "too many requests",
				http.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
