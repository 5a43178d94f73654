package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blogkeeper/internal/service"
	"blogkeeper/internal/store"
	"blogkeeper/models"
)

func TestRegister_Created(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 1, Username: "gopher", Email: "gopher@example.com"}, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed.jwt"}, nil)

	body := `{"username":"gopher","email":"gopher@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "signed.jwt", response.Token)
	assert.Equal(t, int64(1), response.User.UserID)
}

func TestRegister_DuplicateIsBadRequest(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrDuplicateValue)

	body := `{"username":"gopher","email":"gopher@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate field value entered")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{broken")))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Username: "gopher"}, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed.jwt"}, nil)

	body := `{"email":"gopher@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "signed.jwt", response.Token)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)
	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	for range 2 {
		body := `{"email":"gopher@example.com","password":"nope"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	}
}
