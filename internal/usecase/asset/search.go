package asset

import (
	"context"
	"fmt"

	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type assetSearcherSrv struct {
	repo port.AssetRepository
}

// compile-time check: *assetSearcherSrv must satisfy port.AssetSearcher
var _ port.AssetSearcher = (*assetSearcherSrv)(nil)

// NewAssetSearcher constructs an AssetSearcher implementation.
func NewAssetSearcher(repo port.AssetRepository) port.AssetSearcher {
	return &assetSearcherSrv{repo: repo}
}

// SearchAssets matches the query against filename, description and labels,
// scoped to the owner and paginated.
func (s *assetSearcherSrv) SearchAssets(ctx context.Context, in port.SearchAssetsInput) (port.AssetPage, error) {
	page := clampPage(in.Page)
	pageSize := clampPageSize(in.PageSize)

	items, total, err := s.repo.Search(ctx, in.OwnerID, in.Query, page, pageSize)
	if err != nil {
		return port.AssetPage{}, fmt.Errorf("failed searching assets: %w", err)
	}
	if items == nil {
		items = []*model.Asset{}
	}

	return port.AssetPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
