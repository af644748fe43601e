package asset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
	"github.com/pcourtois/media-vault-go/internal/validation"
)

type uploadAssetSrv struct {
	repo       port.AssetRepository
	strg       port.Storage
	thumb      port.ThumbnailGenerator
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
	limits     UploadLimits
}

// compile-time check: *uploadAssetSrv must satisfy port.AssetUploader
var _ port.AssetUploader = (*uploadAssetSrv)(nil)

// NewAssetUploader constructs an AssetUploader implementation.
func NewAssetUploader(repo port.AssetRepository, strg port.Storage, thumb port.ThumbnailGenerator, dispatcher port.TaskDispatcher, genUUID port.UUIDGen, limits UploadLimits) port.AssetUploader {
	return &uploadAssetSrv{repo: repo, strg: strg, thumb: thumb, dispatcher: dispatcher, genUUID: genUUID, limits: limits}
}

// UploadAsset runs the creation pipeline: validate, write the primary blob,
// derive and write the preview for images, then persist the metadata record.
// The metadata write always comes last so a record never exists without its
// backing blob.
func (s *uploadAssetSrv) UploadAsset(ctx context.Context, in port.UploadAssetInput) (*model.Asset, error) {
	mediaType, ok := validation.ClassifyContentType(in.ContentType, s.limits.AllowedImageTypes, s.limits.AllowedVideoTypes)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, in.ContentType)
	}

	size, err := validation.MeasureStreamSize(in.File)
	if err != nil {
		return nil, fmt.Errorf("failed to measure upload size: %w", err)
	}
	if size > s.limits.MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes (max size: %d bytes)", ErrPayloadTooLarge, size, s.limits.MaxFileSizeBytes)
	}

	var labels model.Labels
	if in.RawLabels != nil {
		if err := json.Unmarshal([]byte(*in.RawLabels), &labels); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLabelFormat, err)
		}
	}

	id := s.genUUID()
	base := lastSegment(in.Filename)
	objectKey := fmt.Sprintf("%s/%s_%s", in.OwnerID, id, base)

	if err := s.strg.SaveFile(ctx, objectKey, in.File, size, map[string]string{"Content-Type": in.ContentType}); err != nil {
		return nil, fmt.Errorf("failed to store file %q: %w", objectKey, err)
	}

	var thumbKey, thumbURL *string
	if mediaType == model.MediaTypeImage {
		thumbKey, thumbURL = s.makePreview(ctx, in.File, objectKey, base)
	}

	now := time.Now().UTC()
	a := &model.Asset{
		ID:               id,
		OwnerID:          in.OwnerID,
		ObjectKey:        objectKey,
		OriginalFilename: in.Filename,
		MediaType:        mediaType,
		SizeBytes:        size,
		MimeType:         in.ContentType,
		URL:              s.strg.PublicURL(objectKey),
		ThumbnailKey:     thumbKey,
		ThumbnailURL:     thumbURL,
		Description:      in.Description,
		Labels:           labels,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed persisting asset #%s: %w", id, err)
	}

	dispatchNotification(ctx, s.dispatcher, port.Notification{
		Type:     EventAssetUploaded,
		Value:    a.ID.String(),
		Filename: a.OriginalFilename,
	})

	return a, nil
}

// makePreview derives the preview blob and stores it under the primary key
// with the marked filename. Every failure path is non-fatal: the asset is
// created without a preview.
func (s *uploadAssetSrv) makePreview(ctx context.Context, f io.ReadSeeker, objectKey, base string) (*string, *string) {
	if base == "" || !strings.Contains(objectKey, base) {
		return nil, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		log.Printf("failed to rewind upload for preview of %q: %v", objectKey, err)
		return nil, nil
	}
	data, err := io.ReadAll(f)
	if err != nil {
		log.Printf("failed to read upload for preview of %q: %v", objectKey, err)
		return nil, nil
	}

	thumb, err := s.thumb.Generate(data)
	if err != nil {
		log.Printf("preview generation failed for %q: %v", objectKey, err)
		return nil, nil
	}

	key := strings.Replace(objectKey, base, PreviewMarker+base, 1)
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(thumb), int64(len(thumb)), map[string]string{"Content-Type": "image/jpeg"}); err != nil {
		log.Printf("failed to save preview %q: %v", key, err)
		return nil, nil
	}

	url := s.strg.PublicURL(key)
	return &key, &url
}
