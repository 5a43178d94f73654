package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/internal/store"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  registeredUser,
	}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		// An unknown email and a wrong password are indistinguishable to
		// the caller.
		if errors.Is(err, store.ErrNoUserWasFound) {
			err = service.ErrWrongPassword
		}
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  foundUser,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
