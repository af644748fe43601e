package asset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

// The ownership guard runs before every asset-scoped operation. Two fetch
// modes exist:
//
//   - strict: a missing record yields ErrNotFound and a record owned by
//     someone else yields ErrForbidden, so callers can tell the two apart;
//   - scoped: the query itself filters by owner, so absence and foreign
//     ownership collapse into ErrNotFound.

func fetchOwnedStrict(ctx context.Context, repo port.AssetRepository, ID, ownerID db.UUID) (*model.Asset, error) {
	a, err := repo.GetByID(ctx, ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed fetching asset #%s: %w", ID, err)
	}
	if a.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return a, nil
}

func fetchOwnedScoped(ctx context.Context, repo port.AssetRepository, ID, ownerID db.UUID) (*model.Asset, error) {
	a, err := repo.GetOwned(ctx, ID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed fetching asset #%s: %w", ID, err)
	}
	return a, nil
}
