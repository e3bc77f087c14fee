package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
)

const defaultIdleTTL = 10 * time.Minute

type Logger interface {
	Warn(format string, v ...interface{})
}

// RateLimiterConfig configures NewRateLimiter.
// TrustedProxies holds IPs or CIDRs whose forwarding headers are believed;
// requests from anyone else are keyed by their socket address.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	TrustedProxies    []string
	IdleTTL           time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
// Buckets idle for longer than IdleTTL are dropped.
type RateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	trusted   []*net.IPNet
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	logger    Logger
}

func NewRateLimiter(cfg RateLimiterConfig, logger Logger) (*RateLimiter, error) {
	trusted, err := parseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		trusted:  trusted,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep must be called with mu held
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.idleTTL {
			delete(rl.visitors, ip)
		}
	}
	rl.lastSweep = now
}

// Middleware rejects requests over the per-IP limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if !rl.getLimiter(ip).Allow() {
			rl.logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
			handlers.RespondTooManyRequests(w, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP uses the socket address unless it belongs to a trusted proxy. Behind one,
// the rightmost X-Forwarded-For entry that is not itself a trusted proxy wins,
// then X-Real-IP.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	remote := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		remote = host
	}
	if !rl.isTrusted(remote) {
		return remote
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" || net.ParseIP(hop) == nil {
				continue
			}
			if !rl.isTrusted(hop) {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}
	return remote
}

func (rl *RateLimiter) isTrusted(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, n := range rl.trusted {
		if n.Contains(parsed) {
			return true
		}
	}
	return false
}

// parseTrustedProxies accepts single addresses as well as CIDR ranges
func parseTrustedProxies(entries []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 128
			if v4 := ip.To4(); v4 != nil {
				ip, bits = v4, 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %v", entry, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}
