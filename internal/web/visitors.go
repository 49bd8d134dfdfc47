package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// visitorLog records page views without keeping raw addresses. The salt
// lives for the process, so hashes cannot be joined across restarts.
type visitorLog struct {
	salt string
	logf func(format string, args ...any)
}

func newVisitorLog() visitorLog {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate visitor salt:", err)
	}
	return visitorLog{salt: hex.EncodeToString(b), logf: log.Printf}
}

// hashIP is stable per IP within one process.
func (v visitorLog) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + v.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

var untrackedPrefixes = []string{"/static/", "/images/", "/favicon", "/healthz", "/typewriter/"}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// middleware logs one line per tracked request. Do Not Track is honoured.
func (v visitorLog) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		c.Next()
		v.logf("level=info event=visit visitor=%s path=%s status=%d htmx=%t",
			v.hashIP(c.ClientIP()), path, c.Writer.Status(), c.GetHeader("HX-Request") == "true")
	}
}
