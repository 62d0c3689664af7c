// Package session scopes cart state to a browsing session. Each visitor
// gets a random session ID carried in a signed cookie; the ID is the key
// every cart operation runs under.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CookieName = "cart_session"

	contextKey = "cart_session_id"
)

// ErrNoSession is the structural misuse error: a handler asked for the
// session ID without the session middleware in front of it.
var ErrNoSession = errors.New("cart session missing from request context")

type Manager struct {
	Secret []byte
	TTL    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{Secret: secret, TTL: ttl}
}

// Issue mints a new session ID and the signed token that carries it.
func (m *Manager) Issue() (string, string, error) {
	sid := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return "", "", fmt.Errorf("sign session token: %w", err)
	}
	return sid, token, nil
}

// Parse validates a session token and returns the session ID inside it.
func (m *Manager) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// Middleware attaches a session ID to the request, issuing a fresh cookie
// when none is present or the existing one fails validation.
func (m *Manager) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sid string

		if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
			if parsed, err := m.Parse(ck.Value); err == nil {
				sid = parsed
			}
		}

		if sid == "" {
			newSID, token, err := m.Issue()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "cannot start cart session")
			}
			sid = newSID
			c.SetCookie(&http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.TTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(contextKey, sid)
		return next(c)
	}
}

// ID returns the request's session ID. Calling it outside the session
// middleware is a programming error and fails hard.
func ID(c echo.Context) (string, error) {
	v := c.Get(contextKey)
	sid, ok := v.(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}
