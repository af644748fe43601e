package asset

import (
	"fmt"

	"golang.org/x/net/context"

	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type assetListerSrv struct {
	repo port.AssetRepository
}

// compile-time check: *assetListerSrv must satisfy port.AssetLister
var _ port.AssetLister = (*assetListerSrv)(nil)

// NewAssetLister constructs an AssetLister implementation.
func NewAssetLister(repo port.AssetRepository) port.AssetLister {
	return &assetListerSrv{repo: repo}
}

// ListAssets returns one page of the owner's assets, newest first.
func (s *assetListerSrv) ListAssets(ctx context.Context, in port.ListAssetsInput) (port.AssetPage, error) {
	page := clampPage(in.Page)
	pageSize := clampPageSize(in.PageSize)

	items, total, err := s.repo.List(ctx, in.OwnerID, port.ListAssetsFilter{
		MediaType: in.MediaType,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return port.AssetPage{}, fmt.Errorf("failed listing assets: %w", err)
	}
	if items == nil {
		// serialise empty pages as [], not null
		items = []*model.Asset{}
	}

	return port.AssetPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
