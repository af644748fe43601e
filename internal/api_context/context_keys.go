package api_context

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/db"
)

type ctxKey string

const (
	// AssetIDKey carries the asset ID parsed from the URL.
	AssetIDKey ctxKey = "assetID"
	// AuthUserIDKey carries the authenticated account ID extracted from the bearer token.
	AuthUserIDKey ctxKey = "authUserID"
)

func AssetIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AssetIDKey).(db.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(db.UUID)
	return id, ok
}
