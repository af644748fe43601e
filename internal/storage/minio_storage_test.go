package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"

	asset "github.com/pcourtois/media-vault-go/internal/usecase/asset"
)

type fakeMinio struct {
	bucketExists bool
	existsErr    error
	makeErr      error
	statInfo     minio.ObjectInfo
	statErr      error
	removeErr    error
	putErr       error

	madeBucket string
	putKey     string
	putSize    int64
	putOpts    minio.PutObjectOptions
	putBody    []byte
	removedKey string
}

func (f *fakeMinio) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return f.bucketExists, f.existsErr
}

func (f *fakeMinio) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeErr
}

func (f *fakeMinio) StatObject(ctx context.Context, bucket, fileKey string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

func (f *fakeMinio) RemoveObject(ctx context.Context, bucket, objectName string, opts minio.RemoveObjectOptions) error {
	f.removedKey = objectName
	return f.removeErr
}

func (f *fakeMinio) PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.putKey = objectName
	f.putSize = objectSize
	f.putOpts = opts
	f.putBody, _ = io.ReadAll(reader)
	return minio.UploadInfo{}, f.putErr
}

func newTestStorage(f *fakeMinio) *MinioStorage {
	return &MinioStorage{client: f, endpoint: "minio.test:9000", bucket: "assets"}
}

func TestInitBucket_CreatesWhenMissing(t *testing.T) {
	f := &fakeMinio{bucketExists: false}
	s := newTestStorage(f)

	if err := s.InitBucket(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.madeBucket != "assets" {
		t.Errorf("expected bucket to be created, got %q", f.madeBucket)
	}
}

func TestInitBucket_SkipsWhenPresent(t *testing.T) {
	f := &fakeMinio{bucketExists: true}
	s := newTestStorage(f)

	if err := s.InitBucket(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.madeBucket != "" {
		t.Error("expected no bucket creation")
	}
}

func TestSaveFile_PassesContentType(t *testing.T) {
	f := &fakeMinio{}
	s := newTestStorage(f)

	err := s.SaveFile(context.Background(), "owner/key.png", bytes.NewReader([]byte("data")), 4, map[string]string{"Content-Type": "image/png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.putKey != "owner/key.png" || f.putSize != 4 {
		t.Errorf("put (%q, %d)", f.putKey, f.putSize)
	}
	if f.putOpts.ContentType != "image/png" {
		t.Errorf("content type = %q", f.putOpts.ContentType)
	}
	if string(f.putBody) != "data" {
		t.Errorf("body = %q", f.putBody)
	}
}

func TestRemoveFile_MapsErrors(t *testing.T) {
	f := &fakeMinio{removeErr: minio.ErrorResponse{Code: "NoSuchKey"}}
	s := newTestStorage(f)

	err := s.RemoveFile(context.Background(), "owner/key.png")
	if !errors.Is(err, asset.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestStatFile_ReturnsInfo(t *testing.T) {
	f := &fakeMinio{statInfo: minio.ObjectInfo{Size: 42, ContentType: "video/mp4"}}
	s := newTestStorage(f)

	info, err := s.StatFile(context.Background(), "owner/clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.SizeBytes != 42 || info.ContentType != "video/mp4" {
		t.Errorf("info = %+v", info)
	}
}

func TestFileExists(t *testing.T) {
	s := newTestStorage(&fakeMinio{statInfo: minio.ObjectInfo{Size: 1}})
	ok, err := s.FileExists(context.Background(), "owner/key.png")
	if err != nil || !ok {
		t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
	}

	s = newTestStorage(&fakeMinio{statErr: minio.ErrorResponse{Code: "NoSuchKey"}})
	ok, err = s.FileExists(context.Background(), "owner/key.png")
	if err != nil || ok {
		t.Errorf("expected (false, nil), got (%v, %v)", ok, err)
	}

	s = newTestStorage(&fakeMinio{statErr: minio.ErrorResponse{Code: "AccessDenied"}})
	if _, err := s.FileExists(context.Background(), "owner/key.png"); !errors.Is(err, asset.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPublicURL(t *testing.T) {
	s := newTestStorage(&fakeMinio{})
	if got := s.PublicURL("owner/key.png"); got != "http://minio.test:9000/assets/owner/key.png" {
		t.Errorf("unexpected URL %q", got)
	}

	s.useSSL = true
	if got := s.PublicURL("owner/key.png"); got != "https://minio.test:9000/assets/owner/key.png" {
		t.Errorf("unexpected URL %q", got)
	}
}
