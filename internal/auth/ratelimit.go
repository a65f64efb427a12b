package auth

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/davidhaley/medley/internal/httputil"
)

// LoginLimiter throttles credential attempts per client IP. Idle entries are
// evicted so the map does not grow with one-shot scanners.
type LoginLimiter struct {
	mu       sync.Mutex
	perMin   int
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLoginLimiter(perMin int) *LoginLimiter {
	l := &LoginLimiter{
		perMin:   perMin,
		visitors: make(map[string]*visitor),
	}
	go l.evictLoop()
	return l
}

func (l *LoginLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.allow(ip) {
			httputil.WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many attempts, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *LoginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *LoginLimiter) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}
