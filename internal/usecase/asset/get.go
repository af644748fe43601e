package asset

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type assetGetterSrv struct {
	repo port.AssetRepository
}

// compile-time check: *assetGetterSrv must satisfy port.AssetGetter
var _ port.AssetGetter = (*assetGetterSrv)(nil)

// NewAssetGetter constructs an AssetGetter implementation.
func NewAssetGetter(repo port.AssetRepository) port.AssetGetter {
	return &assetGetterSrv{repo: repo}
}

// GetAsset returns the record after the strict ownership check, so callers
// can distinguish a missing asset from someone else's.
func (s *assetGetterSrv) GetAsset(ctx context.Context, ID, ownerID db.UUID) (*model.Asset, error) {
	return fetchOwnedStrict(ctx, s.repo, ID, ownerID)
}
