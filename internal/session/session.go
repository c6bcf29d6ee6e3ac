package session

import (
	"fmt"
	"net/http"
	"time"

	"bookshoppe/internal/httpx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName carries the guest token between requests.
const CookieName = "book_shoppe_session"

// Manager mints and verifies guest session tokens. A session only names a
// cart slot; it is not user authentication and carries no identity beyond
// a generated guest id.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Middleware resolves the guest session for the request, minting a fresh
// one when the cookie is absent, expired, or tampered with, and puts the
// session id in the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(CookieName); err == nil {
			if id, err := m.parseToken(cookie.Value); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = "guest_" + uuid.New().String()
			token, err := m.issueToken(sessionID)
			if err != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "SESSION_ERROR", "Could not start a session", nil)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := httpx.ContextWithSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Manager) issueToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sessionID,
		"role": "guest",
		"exp":  time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("session token missing subject")
	}
	return sub, nil
}
