package api

import (
	"log"
	"net/http"

	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// DeleteAssetHandler deletes an asset by ID.
func DeleteAssetHandler(svc port.AssetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		id, ok := api_context.AssetIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteAsset(r.Context(), id, ownerID); err != nil {
			writeAssetError(w, err, "Failed to delete asset")
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted asset #%s", id)
	}
}
