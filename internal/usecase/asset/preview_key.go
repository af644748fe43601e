package asset

import "strings"

// derivePreviewKey rebuilds the preview object key from the primary key and
// the declared original filename: the last path segment of the filename is
// substituted within the primary key by the same segment carrying the
// preview marker. It returns "" (no preview) when the filename is absent or
// not part of the primary key; that outcome is tolerated, not an error.
func derivePreviewKey(objectKey, originalFilename string) string {
	base := lastSegment(originalFilename)
	if base == "" || !strings.Contains(objectKey, base) {
		return ""
	}
	return strings.Replace(objectKey, base, PreviewMarker+base, 1)
}

// lastSegment returns the final path segment of a declared filename. Browsers
// may send paths with either separator.
func lastSegment(filename string) string {
	s := strings.ReplaceAll(filename, "\\", "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}
