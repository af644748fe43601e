package port

// ThumbnailGenerator derives a downsized preview from source image bytes.
// It returns an error when the source cannot be decoded; callers decide
// whether a missing preview is fatal.
type ThumbnailGenerator interface {
	Generate(data []byte) ([]byte, error)
}
