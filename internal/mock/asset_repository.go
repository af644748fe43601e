package mock

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// MockAssetRepo implements repository operations for tests.
type MockAssetRepo struct {
	AssetRecord *model.Asset

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
	SearchErr error

	ListOut   []*model.Asset
	ListTotal int
	SearchOut []*model.Asset

	GetCalled      bool
	GetOwnedCalled bool
	Created        *model.Asset
	Updated        *model.Asset
	DeleteCalled   bool
	DeletedID      db.UUID
	DeletedOwnerID db.UUID
	ListCalled     bool
	ListFilter     port.ListAssetsFilter
	SearchCalled   bool
	SearchQuery    string
}

func (m *MockAssetRepo) Create(ctx context.Context, asset *model.Asset) error {
	m.Created = asset
	return m.CreateErr
}

func (m *MockAssetRepo) GetByID(ctx context.Context, id db.UUID) (*model.Asset, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.AssetRecord, nil
}

func (m *MockAssetRepo) GetOwned(ctx context.Context, id, ownerID db.UUID) (*model.Asset, error) {
	m.GetOwnedCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.AssetRecord, nil
}

func (m *MockAssetRepo) Update(ctx context.Context, asset *model.Asset) error {
	m.Updated = asset
	return m.UpdateErr
}

func (m *MockAssetRepo) Delete(ctx context.Context, id, ownerID db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	m.DeletedOwnerID = ownerID
	return m.DeleteErr
}

func (m *MockAssetRepo) List(ctx context.Context, ownerID db.UUID, f port.ListAssetsFilter) ([]*model.Asset, int, error) {
	m.ListCalled = true
	m.ListFilter = f
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	return m.ListOut, m.ListTotal, nil
}

func (m *MockAssetRepo) Search(ctx context.Context, ownerID db.UUID, query string, page, pageSize int) ([]*model.Asset, int, error) {
	m.SearchCalled = true
	m.SearchQuery = query
	if m.SearchErr != nil {
		return nil, 0, m.SearchErr
	}
	return m.SearchOut, m.ListTotal, nil
}
