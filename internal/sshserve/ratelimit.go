package sshserve

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

type ipBucket struct {
	tokens float64
	last   time.Time
}

// limiter is a per-IP token bucket refilled at perMinute tokens a minute.
type limiter struct {
	mu            sync.Mutex
	ratePerSecond float64
	burst         float64
	buckets       map[string]ipBucket
}

func newLimiter(perMinute, burst int) *limiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}
	return &limiter{
		ratePerSecond: float64(perMinute) / 60.0,
		burst:         float64(burst),
		buckets:       make(map[string]ipBucket),
	}
}

func (l *limiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := l.buckets[ip]
	if bucket.last.IsZero() {
		bucket = ipBucket{tokens: l.burst, last: now}
	}

	elapsed := now.Sub(bucket.last).Seconds()
	if elapsed > 0 {
		bucket.tokens = min(bucket.tokens+elapsed*l.ratePerSecond, l.burst)
		bucket.last = now
	}

	if bucket.tokens < 1 {
		l.buckets[ip] = bucket
		return false
	}
	bucket.tokens--
	l.buckets[ip] = bucket
	return true
}

// RateLimitMiddleware enforces per-IP connection limits using a token bucket.
func RateLimitMiddleware(limitPerMinute, burst int) wish.Middleware {
	l := newLimiter(limitPerMinute, burst)
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			now := time.Now().UTC()
			ip := remoteIP(s)
			if !l.allow(ip, now) {
				log.Printf("level=warn event=rate_limit_throttled remote_ip=%s", ip)
				_, _ = s.Write([]byte("rate limit exceeded\n"))
				return
			}
			next(s)
		}
	}
}

// MaxSessionsMiddleware refuses sessions beyond limit running at once.
func MaxSessionsMiddleware(limit int) wish.Middleware {
	if limit <= 0 {
		limit = 1
	}
	sem := make(chan struct{}, limit)
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			select {
			case sem <- struct{}{}:
			default:
				log.Printf("level=warn event=max_sessions_reached limit=%d", limit)
				_, _ = s.Write([]byte("too many sessions, try again later\n"))
				return
			}
			defer func() { <-sem }()
			next(s)
		}
	}
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}
	if host == "" {
		return "unknown"
	}
	return host
}
