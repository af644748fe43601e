package validation

import (
	"bytes"
	"io"
	"testing"

	"github.com/pcourtois/media-vault-go/internal/model"
)

func TestClassifyContentType(t *testing.T) {
	images := []string{"image/jpeg", "image/png"}
	videos := []string{"video/mp4"}

	tests := []struct {
		ct     string
		want   string
		wantOK bool
	}{
		{"image/png", model.MediaTypeImage, true},
		{"IMAGE/PNG", model.MediaTypeImage, true},
		{" image/jpeg ", model.MediaTypeImage, true},
		{"video/mp4", model.MediaTypeVideo, true},
		{"application/pdf", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ClassifyContentType(tt.ct, images, videos)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ClassifyContentType(%q) = (%q, %v), want (%q, %v)", tt.ct, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMeasureStreamSize(t *testing.T) {
	r := bytes.NewReader([]byte("twelve bytes"))

	size, err := MeasureStreamSize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 12 {
		t.Errorf("expected 12, got %d", size)
	}

	// the read position must be restored
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "twelve bytes" {
		t.Errorf("expected full content after measuring, got %q", data)
	}
}

func TestMeasureStreamSize_RestoresMidStreamPosition(t *testing.T) {
	r := bytes.NewReader([]byte("twelve bytes"))
	if _, err := r.Seek(7, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	size, err := MeasureStreamSize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 12 {
		t.Errorf("expected 12, got %d", size)
	}

	data, _ := io.ReadAll(r)
	if string(data) != "bytes" {
		t.Errorf("expected remaining content %q, got %q", "bytes", data)
	}
}
