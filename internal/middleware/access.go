// Package middleware implements the access gate: every request must come
// from an allow-listed network origin and carry the static basic-auth
// credentials before any handler runs.
package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/Ramzi-dr/peoplecounting/internal/config"

	"github.com/3th1nk/cidr"
	"github.com/gin-gonic/gin"
)

// OriginFilter rejects requests whose client address matches no allow-list
// entry. Plain entries are textual prefixes ("192.168.", "::1"); entries
// containing a "/" are CIDR ranges.
func OriginFilter(cfg config.AccessConfig) gin.HandlerFunc {
	var prefixes []string
	var ranges []*cidr.CIDR
	for _, entry := range cfg.AllowList {
		if strings.Contains(entry, "/") {
			block, err := cidr.Parse(entry)
			if err != nil {
				log.Printf("access: skipping invalid allow-list entry %q: %v", entry, err)
				continue
			}
			ranges = append(ranges, block)
			continue
		}
		prefixes = append(prefixes, entry)
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		for _, prefix := range prefixes {
			if strings.HasPrefix(ip, prefix) {
				c.Next()
				return
			}
		}
		for _, block := range ranges {
			if block.Contains(ip) {
				c.Next()
				return
			}
		}
		c.String(http.StatusForbidden, "Forbidden: external access denied")
		c.Abort()
	}
}

// BasicAuth challenges requests without a Basic header and rejects wrong
// credentials. This is the outer credential layer; the superuser reset
// endpoint carries its own, independent one.
func BasicAuth(cfg config.AccessConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", "Basic")
			c.String(http.StatusUnauthorized, "Auth required")
			c.Abort()
			return
		}
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.BasicUser)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.BasicPass)) == 1
		if !userOK || !passOK {
			c.String(http.StatusForbidden, "Forbidden: wrong credentials")
			c.Abort()
			return
		}
		c.Next()
	}
}
