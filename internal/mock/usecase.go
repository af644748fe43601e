package mock

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// MockAssetUploader implements port.AssetUploader for tests.
type MockAssetUploader struct {
	Out    *model.Asset
	Err    error
	Called bool
	In     port.UploadAssetInput
}

func (m *MockAssetUploader) UploadAsset(ctx context.Context, in port.UploadAssetInput) (*model.Asset, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAssetGetter implements port.AssetGetter for tests.
type MockAssetGetter struct {
	Out     *model.Asset
	Err     error
	Called  bool
	ID      db.UUID
	OwnerID db.UUID
}

func (m *MockAssetGetter) GetAsset(ctx context.Context, id, ownerID db.UUID) (*model.Asset, error) {
	m.Called = true
	m.ID = id
	m.OwnerID = ownerID
	return m.Out, m.Err
}

// MockAssetLister implements port.AssetLister for tests.
type MockAssetLister struct {
	Out    port.AssetPage
	Err    error
	Called bool
	In     port.ListAssetsInput
}

func (m *MockAssetLister) ListAssets(ctx context.Context, in port.ListAssetsInput) (port.AssetPage, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAssetSearcher implements port.AssetSearcher for tests.
type MockAssetSearcher struct {
	Out    port.AssetPage
	Err    error
	Called bool
	In     port.SearchAssetsInput
}

func (m *MockAssetSearcher) SearchAssets(ctx context.Context, in port.SearchAssetsInput) (port.AssetPage, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAssetUpdater implements port.AssetUpdater for tests.
type MockAssetUpdater struct {
	Out    *model.Asset
	Err    error
	Called bool
	In     port.UpdateAssetInput
}

func (m *MockAssetUpdater) UpdateAsset(ctx context.Context, in port.UpdateAssetInput) (*model.Asset, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAssetDeleter implements port.AssetDeleter for tests.
type MockAssetDeleter struct {
	Err     error
	Called  bool
	ID      db.UUID
	OwnerID db.UUID
}

func (m *MockAssetDeleter) DeleteAsset(ctx context.Context, id, ownerID db.UUID) error {
	m.Called = true
	m.ID = id
	m.OwnerID = ownerID
	return m.Err
}

// MockRegisterer implements port.UserRegisterer for tests.
type MockRegisterer struct {
	Out    port.AuthOutput
	Err    error
	Called bool
	In     port.RegisterInput
}

func (m *MockRegisterer) Register(ctx context.Context, in port.RegisterInput) (port.AuthOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAuthenticator implements port.UserAuthenticator for tests.
type MockAuthenticator struct {
	Out    port.AuthOutput
	Err    error
	Called bool
	In     port.LoginInput
}

func (m *MockAuthenticator) Login(ctx context.Context, in port.LoginInput) (port.AuthOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}
