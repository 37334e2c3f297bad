package http

import (
	"errors"
	"net/http"

	"github.com/vmelikhov/orderdesk/internal/logger"
	"github.com/vmelikhov/orderdesk/internal/service"
	"github.com/vmelikhov/orderdesk/internal/store"
	"github.com/vmelikhov/orderdesk/internal/utils"
	"github.com/vmelikhov/orderdesk/models"
)

// errorDescriptor pairs the HTTP status and the stable taxonomy kind written
// for a known sentinel error. The sentinel's own message doubles as the
// client-facing text; sentinels are worded to be safe for that.
type errorDescriptor struct {
	status int
	kind   string
}

var errorStatusMap = map[error]errorDescriptor{
	store.ErrUsernameTaken:          {http.StatusConflict, "UsernameTaken"},
	store.ErrNoUserWasFound:         {http.StatusNotFound, "NoSuchUser"},
	service.ErrPasswordTooShort:     {http.StatusBadRequest, "PasswordTooShort"},
	service.ErrMissingCredentials:   {http.StatusBadRequest, "MissingCredentials"},
	service.ErrIncorrectCredentials: {http.StatusUnauthorized, "IncorrectCredentials"},
	service.ErrNoSuchUser:           {http.StatusNotFound, "NoSuchUser"},
	service.ErrTokenInvalid:         {http.StatusUnauthorized, "Unauthorized"},
	ErrUnauthorized:                 {http.StatusUnauthorized, "Unauthorized"},
}

// writeError is the single exit point for failed requests. Known sentinel
// errors are mapped to their status and taxonomy kind; anything else is
// logged with full internal detail and reported to the client as a sanitized
// generic error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for target, desc := range errorStatusMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, models.ErrorResponse{Error: models.APIError{
				Kind:    desc.kind,
				Message: target.Error(),
			}}, desc.status)
			return
		}
	}

	logger.FromRequest(r).Err(err).Msg("unexpected error occurred during request handling")
	utils.WriteJSON(w, models.ErrorResponse{Error: models.APIError{
		Kind:    "Error",
		Message: "internal server error",
	}}, http.StatusInternalServerError)
}

// writeInvalidJSON reports an unreadable request body.
func (h *Handler) writeInvalidJSON(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: models.APIError{
		Kind:    "Error",
		Message: "invalid JSON was passed",
	}}, http.StatusBadRequest)
}
