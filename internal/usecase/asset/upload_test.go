package asset

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/mock"
	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

var (
	testAssetID = db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	testOwnerID = db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
)

func testGenUUID() db.UUID { return testAssetID }

func testLimits() UploadLimits {
	return UploadLimits{
		AllowedImageTypes: []string{"image/jpeg", "image/png"},
		AllowedVideoTypes: []string{"video/mp4"},
		MaxFileSizeBytes:  1 << 20,
	}
}

func TestUploadAsset_UnsupportedMediaType(t *testing.T) {
	repo := &mock.MockAssetRepo{}
	strg := &mock.Storage{}
	svc := NewAssetUploader(repo, strg, &mock.MockThumbnailer{}, &mock.MockDispatcher{}, testGenUUID, testLimits())

	_, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("data")),
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
	})
	if !errors.Is(err, ErrUnsupportedMediaType) {
		t.Fatalf("expected ErrUnsupportedMediaType, got %v", err)
	}
	if strg.SaveCalled {
		t.Error("expected no storage write for a rejected upload")
	}
	if repo.Created != nil {
		t.Error("expected no record for a rejected upload")
	}
}

func TestUploadAsset_TooLarge(t *testing.T) {
	limits := testLimits()
	limits.MaxFileSizeBytes = 3
	strg := &mock.Storage{}
	svc := NewAssetUploader(&mock.MockAssetRepo{}, strg, &mock.MockThumbnailer{}, &mock.MockDispatcher{}, testGenUUID, limits)

	_, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("more than three bytes")),
		Filename:    "big.png",
		ContentType: "image/png",
	})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if strg.SaveCalled {
		t.Error("expected no storage write for an oversized upload")
	}
}

func TestUploadAsset_InvalidLabels(t *testing.T) {
	strg := &mock.Storage{}
	svc := NewAssetUploader(&mock.MockAssetRepo{}, strg, &mock.MockThumbnailer{}, &mock.MockDispatcher{}, testGenUUID, testLimits())

	raw := `not-a-json-array`
	_, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("data")),
		Filename:    "cat.png",
		ContentType: "image/png",
		RawLabels:   &raw,
	})
	if !errors.Is(err, ErrInvalidLabelFormat) {
		t.Fatalf("expected ErrInvalidLabelFormat, got %v", err)
	}
	if strg.SaveCalled {
		t.Error("expected no storage write when labels are invalid")
	}
}

func TestUploadAsset_PrimaryStorageError(t *testing.T) {
	repo := &mock.MockAssetRepo{}
	strg := &mock.Storage{SaveErr: errors.New("save fail")}
	svc := NewAssetUploader(repo, strg, &mock.MockThumbnailer{}, &mock.MockDispatcher{}, testGenUUID, testLimits())

	_, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("data")),
		Filename:    "cat.png",
		ContentType: "image/png",
	})
	if err == nil || !strings.Contains(err.Error(), "save fail") {
		t.Fatalf("expected save fail, got %v", err)
	}
	if repo.Created != nil {
		t.Error("expected no record when the primary blob write fails")
	}
}

func TestUploadAsset_CreateError(t *testing.T) {
	repo := &mock.MockAssetRepo{CreateErr: errors.New("insert fail")}
	dispatcher := &mock.MockDispatcher{}
	svc := NewAssetUploader(repo, &mock.Storage{}, &mock.MockThumbnailer{Out: []byte("thumb")}, dispatcher, testGenUUID, testLimits())

	_, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("data")),
		Filename:    "cat.png",
		ContentType: "image/png",
	})
	if err == nil || !strings.Contains(err.Error(), "insert fail") {
		t.Fatalf("expected insert fail, got %v", err)
	}
	if dispatcher.NotifyCalled {
		t.Error("expected no notification when persisting fails")
	}
}

func TestUploadAsset_ImageSuccess(t *testing.T) {
	repo := &mock.MockAssetRepo{}
	strg := &mock.Storage{}
	thumb := &mock.MockThumbnailer{Out: []byte("thumb-bytes")}
	dispatcher := &mock.MockDispatcher{}
	svc := NewAssetUploader(repo, strg, thumb, dispatcher, testGenUUID, testLimits())

	desc := "a cat"
	raw := `["pets","cats"]`
	out, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("png-bytes")),
		Filename:    "photos/cat.png",
		ContentType: "image/png",
		Description: &desc,
		RawLabels:   &raw,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKey := testOwnerID.String() + "/" + testAssetID.String() + "_cat.png"
	if out.ObjectKey != wantKey {
		t.Errorf("expected object key %q, got %q", wantKey, out.ObjectKey)
	}
	if out.MediaType != model.MediaTypeImage {
		t.Errorf("expected media type image, got %q", out.MediaType)
	}
	if out.OriginalFilename != "photos/cat.png" {
		t.Errorf("unexpected original filename %q", out.OriginalFilename)
	}
	if len(out.Labels) != 2 || out.Labels[0] != "pets" {
		t.Errorf("unexpected labels %v", out.Labels)
	}
	if out.CreatedAt != out.UpdatedAt {
		t.Error("expected identical created/updated timestamps at creation")
	}

	wantThumbKey := testOwnerID.String() + "/" + testAssetID.String() + "_thumb_cat.png"
	if out.ThumbnailKey == nil || *out.ThumbnailKey != wantThumbKey {
		t.Errorf("expected thumbnail key %q, got %v", wantThumbKey, out.ThumbnailKey)
	}
	if out.ThumbnailURL == nil {
		t.Error("expected a thumbnail URL")
	}

	if len(strg.SavedKeys) != 2 || strg.SavedKeys[0] != wantKey || strg.SavedKeys[1] != wantThumbKey {
		t.Errorf("unexpected storage writes %v", strg.SavedKeys)
	}
	if ct := strg.SavedOpts[1]["Content-Type"]; ct != "image/jpeg" {
		t.Errorf("expected preview stored as image/jpeg, got %q", ct)
	}
	if !bytes.Equal(strg.SavedBodies[1], []byte("thumb-bytes")) {
		t.Error("expected the generated preview bytes to be stored")
	}

	if repo.Created == nil || repo.Created.ID != testAssetID {
		t.Error("expected record to be persisted")
	}
	if !dispatcher.NotifyCalled || dispatcher.Notifications[0].Type != EventAssetUploaded {
		t.Errorf("expected an upload notification, got %v", dispatcher.Notifications)
	}
	if dispatcher.Notifications[0].Filename != "photos/cat.png" {
		t.Errorf("unexpected notification filename %q", dispatcher.Notifications[0].Filename)
	}
}

func TestUploadAsset_VideoSkipsPreview(t *testing.T) {
	repo := &mock.MockAssetRepo{}
	strg := &mock.Storage{}
	thumb := &mock.MockThumbnailer{Out: []byte("never")}
	svc := NewAssetUploader(repo, strg, thumb, &mock.MockDispatcher{}, testGenUUID, testLimits())

	out, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("mp4-bytes")),
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if thumb.Called {
		t.Error("expected no preview generation for a video")
	}
	if out.ThumbnailKey != nil || out.ThumbnailURL != nil {
		t.Error("expected null preview fields for a video")
	}
	if len(strg.SavedKeys) != 1 {
		t.Errorf("expected a single storage write, got %v", strg.SavedKeys)
	}
}

func TestUploadAsset_PreviewFailureIsNonFatal(t *testing.T) {
	repo := &mock.MockAssetRepo{}
	strg := &mock.Storage{}
	thumb := &mock.MockThumbnailer{Err: errors.New("decode fail")}
	svc := NewAssetUploader(repo, strg, thumb, &mock.MockDispatcher{}, testGenUUID, testLimits())

	out, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("corrupt")),
		Filename:    "cat.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ThumbnailKey != nil || out.ThumbnailURL != nil {
		t.Error("expected null preview fields when generation fails")
	}
	if repo.Created == nil {
		t.Error("expected record to be persisted despite the preview failure")
	}
}

func TestUploadAsset_PreviewSaveFailureIsNonFatal(t *testing.T) {
	wantThumbKey := testOwnerID.String() + "/" + testAssetID.String() + "_thumb_cat.png"
	repo := &mock.MockAssetRepo{}
	strg := &mock.Storage{SaveErr: errors.New("minio down"), SaveErrForKey: wantThumbKey}
	thumb := &mock.MockThumbnailer{Out: []byte("thumb")}
	svc := NewAssetUploader(repo, strg, thumb, &mock.MockDispatcher{}, testGenUUID, testLimits())

	out, err := svc.UploadAsset(context.Background(), port.UploadAssetInput{
		OwnerID:     testOwnerID,
		File:        bytes.NewReader([]byte("png-bytes")),
		Filename:    "cat.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ThumbnailKey != nil {
		t.Error("expected null preview fields when the preview write fails")
	}
	if repo.Created == nil {
		t.Error("expected record to be persisted despite the preview failure")
	}
}
