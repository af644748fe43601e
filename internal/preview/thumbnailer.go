package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/pcourtois/media-vault-go/internal/port"
)

const (
	// MaxWidth and MaxHeight bound the preview box.
	MaxWidth  = 300
	MaxHeight = 300

	jpegQuality = 85
)

// Thumbnailer derives JPEG previews from source image bytes.
type Thumbnailer struct{}

// compile-time check: *Thumbnailer must satisfy port.ThumbnailGenerator
var _ port.ThumbnailGenerator = (*Thumbnailer)(nil)

func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{}
}

// Generate decodes the source, flattens any transparency or palette indexing
// onto an opaque white background, downscales to fit within the preview box
// while preserving aspect ratio, and re-encodes as baseline JPEG.
func (t *Thumbnailer) Generate(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preview: failed to decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("preview: empty image %dx%d", b.Dx(), b.Dy())
	}

	flat := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, b.Min, draw.Over)

	dst := flat
	if w, h := fitWithin(b.Dx(), b.Dy(), MaxWidth, MaxHeight); w != b.Dx() || h != b.Dy() {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), flat, flat.Bounds(), xdraw.Src, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("preview: failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWithin shrinks (w, h) to fit inside (maxW, maxH) preserving the aspect
// ratio. Images already inside the box keep their dimensions.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	nw := int(float64(w) * ratio)
	nh := int(float64(h) * ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
