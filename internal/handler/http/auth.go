package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, models.NewAuthResponse(user), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.NewAuthResponse(user), http.StatusOK)
}

// logout drops the session cookie. Tokens are stateless, so an already
// copied token stays valid until it expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// startSession issues a token for user and sets the session cookie.
// It reports false after writing an error response.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		writeServiceError(w, r, err)
		return false
	}

	h.setSessionCookie(w, token.SignedString)
	return true
}
