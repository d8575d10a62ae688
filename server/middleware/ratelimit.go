package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/kbukum/transcript-gateway/errors"
)

// RateLimitConfig configures the inbound token-bucket limiter.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per key. Zero disables limiting.
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	// Burst is the bucket size (default: 1).
	Burst int `yaml:"burst" mapstructure:"burst"`
	// SkipPaths are URL path prefixes that are never limited. Empty means
	// DefaultRateLimitSkipPaths.
	SkipPaths []string `yaml:"skip_paths" mapstructure:"skip_paths"`
	// TrustedProxies are IPs or CIDRs whose X-Forwarded-For header is
	// honoured. Requests from any other peer are keyed by RemoteAddr.
	TrustedProxies []string `yaml:"trusted_proxies" mapstructure:"trusted_proxies"`
	// KeyFunc extracts the rate limit key from a request. Defaults to client IP.
	KeyFunc func(*http.Request) string `yaml:"-" mapstructure:"-"`
}

// DefaultRateLimitSkipPaths keeps probes and service info out of the limiter.
var DefaultRateLimitSkipPaths = []string{"/health", "/ready", "/info"}

// Enabled reports whether limiting is configured.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// Validate checks that every trusted proxy parses.
func (c RateLimitConfig) Validate() error {
	_, err := parseProxies(c.TrustedProxies)
	return err
}

const limiterIdleTTL = 10 * time.Minute

// RateLimit returns middleware that applies a per-key token bucket. Refused
// requests get 429 in the shared error shape with a Retry-After header.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if len(cfg.SkipPaths) == 0 {
		cfg.SkipPaths = DefaultRateLimitSkipPaths
	}
	if cfg.KeyFunc == nil {
		// Invalid entries are rejected by Validate at startup.
		proxies, _ := parseProxies(cfg.TrustedProxies)
		cfg.KeyFunc = clientIPFunc(proxies)
	}
	rl := &keyedLimiter{
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		limiters: make(map[string]*limiterEntry),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if matchesPath(r.URL.Path, cfg.SkipPaths) {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.allow(cfg.KeyFunc(r), time.Now()) {
				retry := int(math.Ceil(1 / float64(rl.limit)))
				w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
				writeError(w, apperrors.RateLimited())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type keyedLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	limiters  map[string]*limiterEntry
	lastSweep time.Time
}

func (k *keyedLimiter) allow(key string, now time.Time) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if now.Sub(k.lastSweep) > limiterIdleTTL {
		for stale, e := range k.limiters {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(k.limiters, stale)
			}
		}
		k.lastSweep = now
	}

	e, ok := k.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// clientIPFunc keys requests by the peer address. X-Forwarded-For is only
// read when the peer is a trusted proxy, and then the rightmost hop that is
// not itself a trusted proxy wins.
func clientIPFunc(trusted []netip.Prefix) func(*http.Request) string {
	return func(r *http.Request) string {
		peer := remoteHost(r.RemoteAddr)
		if !isTrusted(peer, trusted) {
			return peer
		}
		hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !isTrusted(hop, trusted) {
				return hop
			}
		}
		return peer
	}
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func isTrusted(host string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func parseProxies(entries []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", e, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", e, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
