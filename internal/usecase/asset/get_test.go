package asset

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/mock"
	"github.com/pcourtois/media-vault-go/internal/model"
)

func TestGetAsset_NotFound(t *testing.T) {
	repo := &mock.MockAssetRepo{GetErr: sql.ErrNoRows}
	svc := NewAssetGetter(repo)

	_, err := svc.GetAsset(context.Background(), testAssetID, testOwnerID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAsset_RepoError(t *testing.T) {
	repo := &mock.MockAssetRepo{GetErr: errors.New("db fail")}
	svc := NewAssetGetter(repo)

	_, err := svc.GetAsset(context.Background(), testAssetID, testOwnerID)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a wrapped db error, got %v", err)
	}
}

func TestGetAsset_ForeignOwner(t *testing.T) {
	other := db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555"))
	repo := &mock.MockAssetRepo{AssetRecord: &model.Asset{ID: testAssetID, OwnerID: other}}
	svc := NewAssetGetter(repo)

	_, err := svc.GetAsset(context.Background(), testAssetID, testOwnerID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGetAsset_Success(t *testing.T) {
	a := &model.Asset{ID: testAssetID, OwnerID: testOwnerID, ObjectKey: "k"}
	repo := &mock.MockAssetRepo{AssetRecord: a}
	svc := NewAssetGetter(repo)

	out, err := svc.GetAsset(context.Background(), testAssetID, testOwnerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != a {
		t.Error("expected the stored record to be returned")
	}
}
