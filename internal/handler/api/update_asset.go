package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/logger"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// UpdateAssetHandler applies a partial update to an asset's description and
// tags. The raw body is inspected key by key so that an explicit null clears
// a field while an omitted key leaves it untouched.
func UpdateAssetHandler(svc port.AssetUpdater) http.HandlerFunc {
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

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		in := port.UpdateAssetInput{ID: id, OwnerID: ownerID}
		if raw, present := fields["description"]; present {
			in.DescriptionSet = true
			if string(raw) != "null" {
				var desc string
				if err := json.Unmarshal(raw, &desc); err != nil {
					WriteError(w, http.StatusBadRequest, "description must be a string or null", err)
					return
				}
				in.Description = &desc
			}
		}
		if raw, present := fields["tags"]; present {
			in.LabelsSet = true
			if string(raw) != "null" {
				var labels model.Labels
				if err := json.Unmarshal(raw, &labels); err != nil {
					WriteError(w, http.StatusBadRequest, "tags must be an array of strings or null", err)
					return
				}
				in.Labels = labels
			}
		}

		out, err := svc.UpdateAsset(r.Context(), in)
		if err != nil {
			writeAssetError(w, err, "Failed to update asset")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully updated asset #%s", id)
	}
}
