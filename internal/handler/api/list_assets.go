package api

import (
	"net/http"
	"strconv"

	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/logger"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// ListAssetsHandler returns a page of the caller's assets, optionally
// filtered by media type.
func ListAssetsHandler(svc port.AssetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		mediaType := r.URL.Query().Get("mediaType")
		if mediaType != "" && mediaType != model.MediaTypeImage && mediaType != model.MediaTypeVideo {
			WriteError(w, http.StatusBadRequest, "mediaType must be \"image\" or \"video\"", nil)
			return
		}

		in := port.ListAssetsInput{
			OwnerID:   ownerID,
			MediaType: mediaType,
			Page:      parseIntParam(r, "page"),
			PageSize:  parseIntParam(r, "pageSize"),
		}
		out, err := svc.ListAssets(r.Context(), in)
		if err != nil {
			writeAssetError(w, err, "Could not list assets")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed %d of %d assets", len(out.Items), out.Total)
	}
}

// parseIntParam reads a positive integer query param, returning 0 when the
// param is absent or malformed so the service applies its defaults.
func parseIntParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
