package port

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
)

// ListAssetsFilter narrows and paginates owner-scoped listings.
type ListAssetsFilter struct {
	MediaType string // "image", "video" or "" for all
	Page      int
	PageSize  int
}

// AssetRepository defines persistence operations for assets. Absent rows are
// reported as sql.ErrNoRows; Update and Delete report sql.ErrNoRows when no
// row was affected.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	// GetByID fetches an asset regardless of owner. Callers that must
	// distinguish "missing" from "not yours" use this and compare owners.
	GetByID(ctx context.Context, ID db.UUID) (*model.Asset, error)
	// GetOwned fetches an asset only if it belongs to ownerID.
	GetOwned(ctx context.Context, ID, ownerID db.UUID) (*model.Asset, error)
	Update(ctx context.Context, asset *model.Asset) error
	Delete(ctx context.Context, ID, ownerID db.UUID) error
	List(ctx context.Context, ownerID db.UUID, f ListAssetsFilter) ([]*model.Asset, int, error)
	Search(ctx context.Context, ownerID db.UUID, query string, page, pageSize int) ([]*model.Asset, int, error)
}
