package asset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type assetDeleterSrv struct {
	repo       port.AssetRepository
	strg       port.Storage
	dispatcher port.TaskDispatcher
}

// compile-time check: *assetDeleterSrv must satisfy port.AssetDeleter
var _ port.AssetDeleter = (*assetDeleterSrv)(nil)

// NewAssetDeleter constructs an AssetDeleter implementation.
func NewAssetDeleter(repo port.AssetRepository, strg port.Storage, dispatcher port.TaskDispatcher) port.AssetDeleter {
	return &assetDeleterSrv{repo: repo, strg: strg, dispatcher: dispatcher}
}

// DeleteAsset removes the primary blob, best-effort removes the preview blob,
// then deletes the metadata record. A primary blob failure aborts the whole
// operation; a preview failure is logged and swallowed.
func (s *assetDeleterSrv) DeleteAsset(ctx context.Context, ID, ownerID db.UUID) error {
	a, err := fetchOwnedStrict(ctx, s.repo, ID, ownerID)
	if err != nil {
		return err
	}

	if err := s.strg.RemoveFile(ctx, a.ObjectKey); err != nil {
		return fmt.Errorf("failed to remove file %q: %w", a.ObjectKey, err)
	}

	if key := previewKeyOf(a); key != "" {
		if err := s.strg.RemoveFile(ctx, key); err != nil {
			log.Printf("failed to remove preview %q: %v", key, err)
		}
	}

	if err := s.repo.Delete(ctx, a.ID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed deleting asset #%s: %w", a.ID, err)
	}

	dispatchNotification(ctx, s.dispatcher, port.Notification{
		Type:     EventAssetDeleted,
		Value:    a.ID.String(),
		Filename: a.OriginalFilename,
	})

	return nil
}

// previewKeyOf prefers the key persisted at creation and falls back to
// deriving it from the primary key for records that predate the stored
// field. An empty result means "no preview to clean up".
func previewKeyOf(a *model.Asset) string {
	if a.ThumbnailKey != nil && *a.ThumbnailKey != "" {
		return *a.ThumbnailKey
	}
	if a.ThumbnailURL == nil || *a.ThumbnailURL == "" {
		return ""
	}
	return derivePreviewKey(a.ObjectKey, a.OriginalFilename)
}
