package api

import (
	"log"
	"net/http"

	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// memoryLimit caps how much of the multipart body is buffered in memory;
// anything bigger spills to temp files.
const memoryLimit = 32 << 20

// UploadAssetHandler accepts a multipart upload (`file`, optional
// `description` and `tags`) and returns the created record with 201.
func UploadAssetHandler(svc port.AssetUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		if err := r.ParseMultipartForm(memoryLimit); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart body", err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "A file is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		in := port.UploadAssetInput{
			OwnerID:     ownerID,
			File:        file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		}
		if v := r.FormValue("description"); v != "" {
			in.Description = &v
		}
		if v := r.FormValue("tags"); v != "" {
			in.RawLabels = &v
		}

		out, err := svc.UploadAsset(r.Context(), in)
		if err != nil {
			writeAssetError(w, err, "Failed to upload asset")
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully uploaded asset #%s", out.ID)
	}
}
