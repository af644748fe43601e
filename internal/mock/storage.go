package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/pcourtois/media-vault-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	ExistsOut   bool

	// captured inputs
	SavedKeys    []string
	SavedOpts    []map[string]string
	SavedBodies  [][]byte
	RemovedKeys  []string
	StatKey      string
	ExistsKey    string

	// errors
	InitBucketErr error
	SaveErr       error
	// SaveErrForKey fails SaveFile only for the given key, so a test can
	// break the preview write while the primary write succeeds.
	SaveErrForKey string
	RemoveErr     error
	// RemoveErrForKey fails RemoveFile only for the given key.
	RemoveErrForKey string
	StatErr         error
	FileExistsErr   error

	// call flags
	InitBucketCalled bool
	SaveCalled       bool
	RemoveCalled     bool
	StatCalled       bool
	FileExistsCalled bool
}

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	if m.SaveErrForKey == fileKey {
		return m.SaveErr
	}
	if m.SaveErrForKey == "" && m.SaveErr != nil {
		return m.SaveErr
	}
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, reader)
	m.SavedKeys = append(m.SavedKeys, fileKey)
	m.SavedOpts = append(m.SavedOpts, opts)
	m.SavedBodies = append(m.SavedBodies, buf.Bytes())
	return nil
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.RemoveCalled = true
	if m.RemoveErrForKey == fileKey {
		return m.RemoveErr
	}
	if m.RemoveErrForKey == "" && m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return nil
}

func (m *Storage) FileExists(ctx context.Context, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	m.ExistsKey = fileKey
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.StatKey = fileKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) PublicURL(fileKey string) string {
	return "http://minio.test/assets/" + fileKey
}
