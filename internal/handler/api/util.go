package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pcourtois/media-vault-go/internal/logger"
	asset "github.com/pcourtois/media-vault-go/internal/usecase/asset"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// writeAssetError maps lifecycle sentinels onto HTTP statuses. Anything
// unclassified becomes a 500 with the fallback message only, no internals.
func writeAssetError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, asset.ErrUnsupportedMediaType):
		WriteError(w, http.StatusBadRequest, "Unsupported media type", err)
	case errors.Is(err, asset.ErrInvalidLabelFormat):
		WriteError(w, http.StatusBadRequest, "Labels must be a JSON array", err)
	case errors.Is(err, asset.ErrPayloadTooLarge):
		WriteError(w, http.StatusRequestEntityTooLarge, "File is too large", err)
	case errors.Is(err, asset.ErrForbidden):
		WriteError(w, http.StatusForbidden, "You do not have access to this asset", nil)
	case errors.Is(err, asset.ErrNotFound), errors.Is(err, asset.ErrObjectNotFound):
		WriteError(w, http.StatusNotFound, "Asset not found", nil)
	default:
		WriteError(w, http.StatusInternalServerError, fallback, err)
	}
}
