package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pcourtois/media-vault-go/internal/logger"
	"github.com/pcourtois/media-vault-go/internal/port"
	"github.com/pcourtois/media-vault-go/internal/usecase/user"
	"github.com/pcourtois/media-vault-go/internal/validation"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func LoginHandler(svc port.UserAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.LoginInput(req)
		out, err := svc.Login(r.Context(), in)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				WriteError(w, http.StatusUnauthorized, "Invalid email or password", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not log in", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully logged in user #%s", out.User.ID)
	}
}
