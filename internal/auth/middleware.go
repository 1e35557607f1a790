package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/SigmaLearn/internal/repository"
)

const (
	ClientCookie = "sl_client"
	ClientHeader = "X-Client-ID"

	sessionKey = "auth.session"

	clientCookieMaxAge = 365 * 24 * 60 * 60
)

// Middleware identifies the browser client of every request and attaches its
// Session. Clients without a valid id are given a new one in a cookie.
func Middleware(store repository.ClientTokenRepository, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := clientIDFrom(c)
		if clientID == "" {
			clientID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ClientCookie, clientID, clientCookieMaxAge, "/", "", secureCookie, true)
		}
		c.Header(ClientHeader, clientID)
		c.Set(sessionKey, LoadSession(store, clientID, time.Now()))
		c.Next()
	}
}

func clientIDFrom(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(ClientHeader)); validClientID(id) {
		return id
	}
	if id, err := c.Cookie(ClientCookie); err == nil && validClientID(id) {
		return id
	}
	return ""
}

func validClientID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// FromContext returns the Session attached by Middleware, or an anonymous
// session without a client when the middleware did not run.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return Anonymous("")
}
