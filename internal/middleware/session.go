package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agroview/groundtruth-backend-go/internal/session"
	"github.com/agroview/groundtruth-backend-go/pkg/response"
)

// Context keys set by SessionAuth for downstream handlers.
const (
	ContextSession   = "session"
	ContextSessionID = "sessionId"
)

// SignSessionToken mints the bearer token handed out on session
// creation. The session id travels in the subject claim.
func SignSessionToken(secret, sessionID string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  sessionID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies a bearer token and returns the session id.
func ParseSessionToken(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token has no session subject")
	}
	return claims.Subject, nil
}

// SessionAuth resolves the bearer token to a live session and stores it
// in the request context. Missing or bad tokens are 401; a valid token
// whose session has been evicted is 404.
func SessionAuth(secret string, manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.Unauthorized(c, "missing session token")
			c.Abort()
			return
		}

		sessionID, err := ParseSessionToken(secret, strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid session token")
			c.Abort()
			return
		}

		sess, err := manager.Get(sessionID)
		if err != nil {
			response.Error(c, http.StatusNotFound, "session expired or not found")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// SessionFrom extracts the session placed in the context by SessionAuth.
func SessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(ContextSession).(*session.Session)
}
