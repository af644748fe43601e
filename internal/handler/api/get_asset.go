package api

import (
	"log"
	"net/http"

	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/port"
)

func GetAssetHandler(svc port.AssetGetter) http.HandlerFunc {
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

		out, err := svc.GetAsset(r.Context(), id, ownerID)
		if err != nil {
			writeAssetError(w, err, "Could not get asset details")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully returned details for asset #%s", id)
	}
}
