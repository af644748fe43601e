package asset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type assetUpdaterSrv struct {
	repo       port.AssetRepository
	dispatcher port.TaskDispatcher
}

// compile-time check: *assetUpdaterSrv must satisfy port.AssetUpdater
var _ port.AssetUpdater = (*assetUpdaterSrv)(nil)

// NewAssetUpdater constructs an AssetUpdater implementation.
func NewAssetUpdater(repo port.AssetRepository, dispatcher port.TaskDispatcher) port.AssetUpdater {
	return &assetUpdaterSrv{repo: repo, dispatcher: dispatcher}
}

// UpdateAsset applies only the supplied fields. A field explicitly supplied
// as null clears the stored value; an omitted field is left untouched. The
// updated timestamp is bumped on every call.
func (s *assetUpdaterSrv) UpdateAsset(ctx context.Context, in port.UpdateAssetInput) (*model.Asset, error) {
	a, err := fetchOwnedStrict(ctx, s.repo, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	if in.DescriptionSet {
		a.Description = in.Description
	}
	if in.LabelsSet {
		a.Labels = in.Labels
	}
	a.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the record vanished between fetch and persist
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed updating asset #%s: %w", a.ID, err)
	}

	dispatchNotification(ctx, s.dispatcher, port.Notification{
		Type:     EventAssetUpdated,
		Value:    a.ID.String(),
		Filename: a.OriginalFilename,
	})

	return a, nil
}
