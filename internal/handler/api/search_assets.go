package api

import (
	"net/http"
	"strings"

	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/logger"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// SearchAssetsHandler matches a free-text query against the caller's assets.
func SearchAssetsHandler(svc port.AssetSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("query"))
		if query == "" {
			WriteError(w, http.StatusBadRequest, "A search query is required", nil)
			return
		}

		in := port.SearchAssetsInput{
			OwnerID:  ownerID,
			Query:    query,
			Page:     parseIntParam(r, "page"),
			PageSize: parseIntParam(r, "pageSize"),
		}
		out, err := svc.SearchAssets(r.Context(), in)
		if err != nil {
			writeAssetError(w, err, "Could not search assets")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Search for %q matched %d assets", query, out.Total)
	}
}
