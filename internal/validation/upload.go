package validation

import (
	"io"
	"strings"

	"github.com/pcourtois/media-vault-go/internal/model"
)

// ClassifyContentType matches a declared content type against the image and
// video allow-lists, case-insensitively. The second return value is false
// when neither list matches.
func ClassifyContentType(contentType string, imageTypes, videoTypes []string) (string, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if containsFold(imageTypes, ct) {
		return model.MediaTypeImage, true
	}
	if containsFold(videoTypes, ct) {
		return model.MediaTypeVideo, true
	}
	return "", false
}

// MeasureStreamSize returns the total length of the stream in bytes. The read
// position is restored afterwards so the stream can be consumed again.
func MeasureStreamSize(f io.Seeker) (int64, error) {
	cur, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}

func containsFold(list []string, ct string) bool {
	for _, t := range list {
		if strings.EqualFold(strings.TrimSpace(t), ct) {
			return true
		}
	}
	return false
}
