package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ramzi-dr/peoplecounting/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGateRouter(cfg config.AccessConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OriginFilter(cfg), BasicAuth(cfg))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend OK")
	})
	return r
}

func serveFrom(r *gin.Engine, remoteAddr string, auth func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	if auth != nil {
		auth(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withBasicAuth(user, pass string) func(*http.Request) {
	return func(req *http.Request) {
		req.SetBasicAuth(user, pass)
	}
}

func gateConfig() config.AccessConfig {
	return config.AccessConfig{
		AllowList: []string{"::1", "127.0.0.1", "::ffff:127.0.0.1", "192.168.", "10."},
		BasicUser: "AdminHS",
		BasicPass: "SecurePassword",
	}
}

func TestOriginFilterAllowsLoopbackAndPrivate(t *testing.T) {
	r := newGateRouter(gateConfig())

	for _, addr := range []string{"127.0.0.1:54321", "192.168.1.42:1000", "10.0.0.7:1000", "[::1]:1000"} {
		w := serveFrom(r, addr, withBasicAuth("AdminHS", "SecurePassword"))
		assert.Equal(t, http.StatusOK, w.Code, "addr %s", addr)
		assert.Equal(t, "Backend OK", w.Body.String())
	}
}

func TestOriginFilterRejectsExternal(t *testing.T) {
	r := newGateRouter(gateConfig())

	w := serveFrom(r, "203.0.113.7:1000", withBasicAuth("AdminHS", "SecurePassword"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: external access denied", w.Body.String())
}

func TestOriginFilterCIDREntry(t *testing.T) {
	cfg := gateConfig()
	cfg.AllowList = []string{"172.16.0.0/12"}
	r := newGateRouter(cfg)

	w := serveFrom(r, "172.20.3.4:1000", withBasicAuth("AdminHS", "SecurePassword"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serveFrom(r, "172.32.0.1:1000", withBasicAuth("AdminHS", "SecurePassword"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBasicAuthMissingHeaderChallenges(t *testing.T) {
	r := newGateRouter(gateConfig())

	w := serveFrom(r, "127.0.0.1:54321", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Auth required", w.Body.String())
}

func TestBasicAuthWrongCredentials(t *testing.T) {
	r := newGateRouter(gateConfig())

	w := serveFrom(r, "127.0.0.1:54321", withBasicAuth("AdminHS", "wrong"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: wrong credentials", w.Body.String())
}

func TestOriginFilterRunsBeforeBasicAuth(t *testing.T) {
	r := newGateRouter(gateConfig())

	// External origin is rejected even without credentials.
	w := serveFrom(r, "203.0.113.7:1000", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: external access denied", w.Body.String())
}
