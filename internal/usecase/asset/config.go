package asset

// PreviewMarker prefixes the filename of a derived preview blob.
const PreviewMarker = "thumb_"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// UploadLimits carries the configured allow-lists and size ceiling checked
// before any storage write.
type UploadLimits struct {
	AllowedImageTypes []string
	AllowedVideoTypes []string
	MaxFileSizeBytes  int64
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampPageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}
