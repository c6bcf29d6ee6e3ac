package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookshoppe/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(dst *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*dst = httpx.SessionIDFrom(r)
		w.WriteHeader(http.StatusOK)
	})
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", CookieName)
	return nil
}

func TestMiddleware_MintsGuestSession(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	var sessionID string
	rec := httptest.NewRecorder()
	manager.Middleware(capture(&sessionID)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, strings.HasPrefix(sessionID, "guest_"))

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestMiddleware_ReusesSessionAcrossRequests(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	var first string
	rec := httptest.NewRecorder()
	manager.Middleware(capture(&first)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := sessionCookie(t, rec)

	var second string
	rec = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	manager.Middleware(capture(&second)).ServeHTTP(rec, r)

	assert.Equal(t, first, second)
	// A valid cookie is not reissued.
	assert.Empty(t, rec.Result().Cookies())
}

func TestMiddleware_TamperedTokenStartsFresh(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	var sessionID string
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not.a.token"})
	manager.Middleware(capture(&sessionID)).ServeHTTP(rec, r)

	assert.True(t, strings.HasPrefix(sessionID, "guest_"))
	cookie := sessionCookie(t, rec)
	assert.NotEqual(t, "not.a.token", cookie.Value)
}

func TestMiddleware_WrongSecretStartsFresh(t *testing.T) {
	minter := NewManager("secret-a", time.Hour)
	token, err := minter.issueToken("guest_original")
	require.NoError(t, err)

	manager := NewManager("secret-b", time.Hour)

	var sessionID string
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	manager.Middleware(capture(&sessionID)).ServeHTTP(rec, r)

	assert.NotEqual(t, "guest_original", sessionID)
	assert.True(t, strings.HasPrefix(sessionID, "guest_"))
}

func TestMiddleware_ExpiredTokenStartsFresh(t *testing.T) {
	expired := NewManager("test-secret", -time.Minute)
	token, err := expired.issueToken("guest_stale")
	require.NoError(t, err)

	manager := NewManager("test-secret", time.Hour)

	var sessionID string
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	manager.Middleware(capture(&sessionID)).ServeHTTP(rec, r)

	assert.NotEqual(t, "guest_stale", sessionID)
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.issueToken("guest_abc")
	require.NoError(t, err)

	got, err := manager.parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "guest_abc", got)
}
