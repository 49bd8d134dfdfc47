package sshserve

import (
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
)

// fakeSession implements only what the middleware touches.
type fakeSession struct {
	ssh.Session
	remote net.Addr

	mu     sync.Mutex
	writes []string
}

func (f *fakeSession) RemoteAddr() net.Addr { return f.remote }

func (f *fakeSession) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, string(p))
	return len(p), nil
}

func newSession(ip string) *fakeSession {
	return &fakeSession{remote: &net.TCPAddr{IP: net.ParseIP(ip), Port: 2222}}
}

func TestRateLimitMiddlewareThrottlesByIP(t *testing.T) {
	called := 0
	handler := RateLimitMiddleware(60, 2)(func(ssh.Session) { called++ })

	s := newSession("203.0.113.10")
	handler(s)
	handler(s)
	handler(s)

	assert.Equal(t, 2, called)
	assert.Equal(t, []string{"rate limit exceeded\n"}, s.writes)
}

func TestRateLimitMiddlewareIsolatedPerIP(t *testing.T) {
	called := 0
	handler := RateLimitMiddleware(60, 1)(func(ssh.Session) { called++ })

	a := newSession("203.0.113.10")
	b := newSession("203.0.113.11")
	handler(a)
	handler(a)
	handler(b)

	assert.Equal(t, 2, called)
	assert.Len(t, a.writes, 1)
	assert.Empty(t, b.writes)
}

func TestLimiterRefills(t *testing.T) {
	l := newLimiter(60, 1)
	start := time.Unix(1_700_000_000, 0)

	assert.True(t, l.allow("ip", start))
	assert.False(t, l.allow("ip", start.Add(500*time.Millisecond)))
	assert.True(t, l.allow("ip", start.Add(1500*time.Millisecond)))
	assert.False(t, l.allow("ip", start.Add(1500*time.Millisecond)))

	// Long idle periods refill to the burst, not beyond.
	later := start.Add(time.Hour)
	assert.True(t, l.allow("ip", later))
	assert.False(t, l.allow("ip", later))
}

func TestLimiterDefaults(t *testing.T) {
	l := newLimiter(0, 0)
	assert.InDelta(t, 0.5, l.ratePerSecond, 1e-9)
	assert.Equal(t, 10.0, l.burst)
}

func TestMaxSessionsMiddleware(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	handler := MaxSessionsMiddleware(1)(func(ssh.Session) {
		entered <- struct{}{}
		<-release
	})

	first := newSession("203.0.113.10")
	done := make(chan struct{})
	go func() {
		handler(first)
		close(done)
	}()
	<-entered

	second := newSession("203.0.113.11")
	handler(second)
	assert.Equal(t, []string{"too many sessions, try again later\n"}, second.writes)

	close(release)
	<-done

	go handler(newSession("203.0.113.12"))
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("slot was not released")
	}
}

type opaqueAddr string

func (a opaqueAddr) Network() string { return "test" }
func (a opaqueAddr) String() string  { return string(a) }

func TestRemoteIPFallbacks(t *testing.T) {
	s := &fakeSession{}
	assert.Equal(t, "unknown", remoteIP(s))

	s.remote = opaqueAddr("opaque")
	assert.Equal(t, "opaque", remoteIP(s))

	s.remote = opaqueAddr(":22")
	assert.Equal(t, "unknown", remoteIP(s))
}

func TestNewUsesConfig(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.SSHHost = "127.0.0.1"
	cfg.SSHPort = 2345
	cfg.SSHHostKeyPath = filepath.Join(t.TempDir(), "host_ed25519")

	s, err := New(cfg, TeaHandler(nil))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2345", s.Addr())
	assert.FileExists(t, cfg.SSHHostKeyPath)
}
