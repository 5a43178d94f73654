package service

import (
	"context"

	"blogkeeper/internal/adapter"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

type clientAuthService struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func NewClientAuthService(server adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{server: server, logger: logger}
}

// Register implements [ClientAuthService].
func (c *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	login, err := c.server.Register(ctx, user)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", user.Email).Msg("registration failed")
		return models.User{}, mapAdapterError(err)
	}

	c.logger.Info().Int64("user_id", login.User.UserID).Msg("registered and logged in")
	return login.User, nil
}

// Login implements [ClientAuthService].
func (c *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	login, err := c.server.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		c.logger.Warn().Err(err).Str("email", email).Msg("login failed")
		return models.User{}, mapAdapterError(err)
	}

	c.logger.Info().Int64("user_id", login.User.UserID).Msg("logged in")
	return login.User, nil
}
