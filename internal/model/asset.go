package model

import (
	"time"

	"github.com/pcourtois/media-vault-go/internal/db"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Asset is the durable metadata record for one uploaded media object.
// Everything except Description, Labels and UpdatedAt is immutable once
// the record has been persisted.
type Asset struct {
	ID               db.UUID   `json:"id"`
	OwnerID          db.UUID   `json:"userId"`
	ObjectKey        string    `json:"fileName"`
	OriginalFilename string    `json:"originalFileName"`
	MediaType        string    `json:"mediaType"`
	SizeBytes        int64     `json:"fileSize"`
	MimeType         string    `json:"mimeType"`
	URL              string    `json:"blobUrl"`
	ThumbnailKey     *string   `json:"thumbnailKey,omitempty"`
	ThumbnailURL     *string   `json:"thumbnailUrl"`
	Description      *string   `json:"description"`
	Labels           Labels    `json:"tags"`
	CreatedAt        time.Time `json:"uploadedAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
