package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blogkeeper/internal/service"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

// withCapturedLogger attaches a buffer-backed logger to the request so the
// middleware's log entries can be asserted on.
func withCapturedLogger(r *http.Request) (*http.Request, *bytes.Buffer) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	return r.WithContext(zl.WithContext(r.Context())), &buf
}

func TestAuth_MissingHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/posts", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}

func TestAuth_MalformedHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}

func TestAuth_ExpiredToken(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "stale.jwt").
		Return(models.Token{}, service.ErrTokenIsExpired)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	r.Header.Set("Authorization", "Bearer stale.jwt")

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuth_ValidTokenInjectsIdentity(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.jwt").
		Return(models.Token{Identity: models.Identity{UserID: 42, Username: "gopher"}}, nil)

	var seen models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := r.Context().Value(utils.IdentityCtxKey).(models.Identity)
		require.True(t, ok)
		seen = identity
	})

	r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	r.Header.Set("Authorization", "Bearer valid.jwt")

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), seen.UserID)
	assert.Equal(t, "gopher", seen.Username)
}

func TestAuth_FailureLogsCallerAddress(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	r.RemoteAddr = "203.0.113.7:54321"
	r, logs := withCapturedLogger(r)

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"ip":"203.0.113.7:54321"`)
}

func TestAuth_SuccessLogsDebugEntry(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.jwt").
		Return(models.Token{Identity: models.Identity{UserID: 42, Username: "gopher"}}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	r.Header.Set("Authorization", "Bearer valid.jwt")
	r, logs := withCapturedLogger(r)

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logs.String(), `"level":"debug"`)
	assert.Contains(t, logs.String(), `"message":"user authenticated"`)
	assert.Contains(t, logs.String(), `"user_id":42`)
	assert.Contains(t, logs.String(), `"username":"gopher"`)
}
