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

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func RegisterHandler(svc port.UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
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

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.RegisterInput(req)
		out, err := svc.Register(r.Context(), in)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				WriteError(w, http.StatusConflict, "An account with this email already exists", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not register account", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully registered user #%s", out.User.ID)
	}
}
