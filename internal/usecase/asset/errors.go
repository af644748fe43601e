package asset

import "errors"

// Failures surfaced by the lifecycle operations. The first group is always
// client-caused and never retried.
var (
	ErrNotFound             = errors.New("asset: not found")
	ErrForbidden            = errors.New("asset: access denied")
	ErrUnsupportedMediaType = errors.New("asset: unsupported media type")
	ErrPayloadTooLarge      = errors.New("asset: payload too large")
	ErrInvalidLabelFormat   = errors.New("asset: labels must be a JSON array")
)

// Storage-level sentinels, mapped from the blob store client.
var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
