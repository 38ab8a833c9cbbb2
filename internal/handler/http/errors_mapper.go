package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
)

// errorResponse is the status and public message for a sentinel error.
// An empty message means the error's own text (from the sentinel onwards)
// is returned.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order; the first hit wins.
var errorResponses = []errorResponse{
	{target: ErrInvalidJSON, status: http.StatusBadRequest, message: ErrInvalidJSON.Error()},
	{target: ErrInvalidPathID, status: http.StatusBadRequest, message: ErrInvalidPathID.Error()},
	{target: validators.ErrValidation, status: http.StatusBadRequest},

	{target: store.ErrEmailAlreadyExists, status: http.StatusBadRequest, message: store.ErrEmailAlreadyExists.Error()},
	{target: store.ErrUserNotFound, status: http.StatusNotFound, message: store.ErrUserNotFound.Error()},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: service.ErrInvalidCredentials.Error()},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: ErrUnauthorized.Error()},
	{target: ErrUnauthorized, status: http.StatusUnauthorized, message: ErrUnauthorized.Error()},
}

// statusFromError returns the HTTP status and public message for err.
// Errors that match no entry are internal: 500 with the generic status text,
// so driver or hashing details never reach the client.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message != "" {
			return resp.status, resp.message
		}

		// keep the field details, drop the wrapping context added on the way up
		text := err.Error()
		if i := strings.Index(text, resp.target.Error()); i >= 0 {
			text = text[i:]
		}
		return resp.status, text
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err and writes the mapped {"error": ...} response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

func writeNotFound(w http.ResponseWriter) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
