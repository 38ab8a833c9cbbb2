package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// The token is taken from the "token" cookie, or failing that from an
// "Authorization: Bearer <token>" header, and validated via
// [service.AuthService.ParseToken]. On success the user id is stored in the
// request context under [utils.UserIDCtxKey] and added to the request-scoped
// logger as "user_id".
//
// Any missing, malformed, or rejected token yields 401 {"error":"unauthorized"}
// and the downstream handler is not invoked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("no session token")
			writeServiceError(w, r, ErrUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// sessionToken returns the session token of r: the cookie wins over the
// Authorization header.
func sessionToken(r *http.Request) (string, error) {
	if token := sessionTokenFromCookie(r); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrUnauthorized
	}

	return utils.ParseBearerToken(authHeader)
}
