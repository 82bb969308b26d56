package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVerifier accepts one fixed token.
type fakeVerifier struct {
	token string
	sub   string
}

func (f fakeVerifier) Verify(_ context.Context, token string) (string, error) {
	if token == f.token {
		return f.sub, nil
	}
	return "", errors.New("bad token")
}

func newAuthRouter(v fakeVerifier) *gin.Engine {
	r := gin.New()
	r.GET("/me", Authenticate(v, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"sub": c.MustGet(ContextExternalID)})
	})
	return r
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(fakeVerifier{token: "tok", sub: "user_1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	r := newAuthRouter(fakeVerifier{token: "tok", sub: "user_1"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer wrong")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateAcceptsBearerHeader(t *testing.T) {
	r := newAuthRouter(fakeVerifier{token: "tok", sub: "user_1"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sub": "user_1"}`, w.Body.String())
}

func TestAuthenticateAcceptsSessionCookie(t *testing.T) {
	r := newAuthRouter(fakeVerifier{token: "tok", sub: "user_1"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: "tok"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateCookieTakesPrecedence(t *testing.T) {
	r := newAuthRouter(fakeVerifier{token: "tok", sub: "user_1"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: "tok"})
	req.Header.Set("Authorization", "Bearer something-else")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireBusinessBlocksWithoutContext(t *testing.T) {
	r := gin.New()
	r.GET("/gated", RequireBusiness(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
