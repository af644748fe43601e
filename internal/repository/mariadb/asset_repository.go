package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type AssetRepository struct {
	db *sql.DB
}

// compile-time check: *AssetRepository must satisfy port.AssetRepository
var _ port.AssetRepository = (*AssetRepository)(nil)

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, owner_id, object_key, original_filename, media_type, size_bytes, mime_type, url, thumbnail_key, thumbnail_url, description, labels, created_at, updated_at`

func (r *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	log.Printf("creating database record for asset #%s...", asset.ID)

	const query = `
      INSERT INTO assets
        (id, owner_id, object_key, original_filename, media_type, size_bytes, mime_type, url, thumbnail_key, thumbnail_url, description, labels, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.OwnerID, asset.ObjectKey,
		asset.OriginalFilename, asset.MediaType,
		asset.SizeBytes, asset.MimeType, asset.URL,
		asset.ThumbnailKey, asset.ThumbnailURL,
		asset.Description, asset.Labels,
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Asset, error) {
	log.Printf("fetching asset #%s from the database...", ID)

	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ?`
	return scanAsset(r.db.QueryRowContext(ctx, query, ID))
}

func (r *AssetRepository) GetOwned(ctx context.Context, ID, ownerID db.UUID) (*model.Asset, error) {
	log.Printf("fetching asset #%s owned by #%s from the database...", ID, ownerID)

	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ? AND owner_id = ?`
	return scanAsset(r.db.QueryRowContext(ctx, query, ID, ownerID))
}

// Update persists the mutable fields only. sql.ErrNoRows is returned when the
// record no longer exists.
func (r *AssetRepository) Update(ctx context.Context, asset *model.Asset) error {
	log.Printf("updating database record for asset #%s...", asset.ID)

	const query = `
      UPDATE assets
      SET
        description = ?,
        labels      = ?,
        updated_at  = ?
      WHERE id = ? AND owner_id = ?
    `
	res, err := r.db.ExecContext(ctx, query,
		asset.Description,
		asset.Labels,
		asset.UpdatedAt,
		asset.ID, asset.OwnerID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, ID, ownerID db.UUID) error {
	log.Printf("deleting database record for asset #%s...", ID)

	const query = `DELETE FROM assets WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, query, ID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *AssetRepository) List(ctx context.Context, ownerID db.UUID, f port.ListAssetsFilter) ([]*model.Asset, int, error) {
	log.Printf("listing assets owned by #%s (page %d)...", ownerID, f.Page)

	where := `WHERE owner_id = ?`
	args := []any{ownerID}
	if f.MediaType != "" {
		where += ` AND media_type = ?`
		args = append(args, f.MediaType)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed counting assets: %w", err)
	}

	query := `SELECT ` + assetColumns + ` FROM assets ` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	assets, err := collectAssets(rows)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

// Search matches the query as a substring against the original filename, the
// description and the labels JSON, scoped to the owner.
func (r *AssetRepository) Search(ctx context.Context, ownerID db.UUID, query string, page, pageSize int) ([]*model.Asset, int, error) {
	log.Printf("searching assets owned by #%s for %q...", ownerID, query)

	const where = `WHERE owner_id = ? AND (original_filename LIKE ? OR description LIKE ? OR labels LIKE ?)`
	pattern := "%" + query + "%"
	args := []any{ownerID, pattern, pattern, pattern}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed counting search results: %w", err)
	}

	sel := `SELECT ` + assetColumns + ` FROM assets ` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, sel, args...)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	assets, err := collectAssets(rows)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*model.Asset, error) {
	var a model.Asset
	if err := row.Scan(
		&a.ID, &a.OwnerID, &a.ObjectKey,
		&a.OriginalFilename, &a.MediaType,
		&a.SizeBytes, &a.MimeType, &a.URL,
		&a.ThumbnailKey, &a.ThumbnailURL,
		&a.Description, &a.Labels,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAssets(rows *sql.Rows) ([]*model.Asset, error) {
	var assets []*model.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}
