package port

import (
	"context"
	"io"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
)

type UUIDGen func() db.UUID

// AssetUploader validates an inbound upload, stores the primary blob and an
// optional preview, and persists the metadata record.
type AssetUploader interface {
	UploadAsset(ctx context.Context, in UploadAssetInput) (*model.Asset, error)
}
type UploadAssetInput struct {
	OwnerID     db.UUID
	File        io.ReadSeeker
	Filename    string
	ContentType string
	Description *string
	// RawLabels is the label list as received: a JSON-encoded array string.
	RawLabels *string
}

// AssetGetter returns a single asset after an ownership check.
type AssetGetter interface {
	GetAsset(ctx context.Context, ID, ownerID db.UUID) (*model.Asset, error)
}

// AssetPage is one page of an owner-scoped listing.
type AssetPage struct {
	Items    []*model.Asset `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// AssetLister returns the owner's assets, paginated and optionally filtered
// by media type.
type AssetLister interface {
	ListAssets(ctx context.Context, in ListAssetsInput) (AssetPage, error)
}
type ListAssetsInput struct {
	OwnerID   db.UUID
	MediaType string
	Page      int
	PageSize  int
}

// AssetSearcher matches a free-text query against the owner's assets.
type AssetSearcher interface {
	SearchAssets(ctx context.Context, in SearchAssetsInput) (AssetPage, error)
}
type SearchAssetsInput struct {
	OwnerID  db.UUID
	Query    string
	Page     int
	PageSize int
}

// AssetUpdater applies a partial update to description/labels.
type AssetUpdater interface {
	UpdateAsset(ctx context.Context, in UpdateAssetInput) (*model.Asset, error)
}
type UpdateAssetInput struct {
	ID      db.UUID
	OwnerID db.UUID
	// Set flags distinguish "field omitted" from "field explicitly null".
	Description    *string
	DescriptionSet bool
	Labels         model.Labels
	LabelsSet      bool
}

// AssetDeleter removes an asset's blobs and its metadata record.
type AssetDeleter interface {
	DeleteAsset(ctx context.Context, ID, ownerID db.UUID) error
}

// UserRegisterer creates an account and issues a token for it.
type UserRegisterer interface {
	Register(ctx context.Context, in RegisterInput) (AuthOutput, error)
}
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserAuthenticator verifies credentials and issues a token.
type UserAuthenticator interface {
	Login(ctx context.Context, in LoginInput) (AuthOutput, error)
}
type LoginInput struct {
	Email    string
	Password string
}

type AuthOutput struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}
