package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/mock"
	"blogkeeper/internal/store"
	"blogkeeper/models"
)

func newTestAuthService(t *testing.T) (*gomock.Controller, *mock.MockUserRepository, AuthService) {
	ctrl := gomock.NewController(t)
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "blogkeeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
	return ctrl, mockRepo, svc
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	ctrl, mockRepo, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	input := models.User{Username: "gopher", Email: "gopher@example.com", Password: "secret123"}

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			require.Empty(t, user.Password, "plaintext password must not reach the repository")
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, registered.PasswordHash, "hash must not leak out of the service")
}

func TestRegisterUser_ValidationMessages(t *testing.T) {
	ctrl, _, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		message string
	}{
		{"missing username", models.User{Email: "a@b.co", Password: "secret123"}, "Please add a username"},
		{"bad email", models.User{Username: "gopher", Email: "not-an-email", Password: "secret123"}, "Please add a valid email"},
		{"short password", models.User{Username: "gopher", Email: "a@b.co", Password: "12345"}, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.user)
			require.Error(t, err)

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Contains(t, ve.Messages, tt.message)
		})
	}
}

func TestRegisterUser_DuplicateSurfaces(t *testing.T) {
	ctrl, mockRepo, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrDuplicateValue)

	_, err := svc.RegisterUser(ctx, models.User{Username: "gopher", Email: "a@b.co", Password: "secret123"})
	require.True(t, errors.Is(err, store.ErrDuplicateValue))
}

func TestLogin_Success(t *testing.T) {
	ctrl, mockRepo, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		FindUserByEmail(ctx, "gopher@example.com").
		Return(models.User{UserID: 7, Username: "gopher", Email: "gopher@example.com", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(ctx, models.User{Email: "gopher@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl, mockRepo, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		FindUserByEmail(ctx, "gopher@example.com").
		Return(models.User{PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, models.User{Email: "gopher@example.com", Password: "wrong"})
	require.True(t, errors.Is(err, ErrWrongPassword))
}

func TestLogin_MissingCredentials(t *testing.T) {
	ctrl, _, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.Login(ctx, models.User{Email: "gopher@example.com"})
	require.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestLogin_NoSuchUser(t *testing.T) {
	ctrl, mockRepo, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByEmail(ctx, "missing@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Email: "missing@example.com", Password: "secret123"})
	require.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl, _, svc := newTestAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := models.User{UserID: 7, Username: "gopher", Email: "gopher@example.com"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.Identity.UserID)
	assert.Equal(t, "gopher", parsed.Identity.Username)
}

func TestParseToken_GarbageIsInvalid(t *testing.T) {
	ctrl, _, svc := newTestAuthService(t)
	defer ctrl.Finish()

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
