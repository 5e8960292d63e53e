// Package textdetect classifies file content so the runner can skip
// binary files and label results with a language. It delegates to go-enry.
package textdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// sampleSize is the number of leading bytes inspected for classification.
// Matches the common heuristic of sniffing the first 8 KiB.
const sampleSize = 8192

// IsBinary reports whether content looks like binary data rather than text.
// Empty content is considered text.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	if len(content) > sampleSize {
		content = content[:sampleSize]
	}
	return enry.IsBinary(content)
}

// Language returns a display label for the file's language, or "text" when
// detection is inconclusive.
func Language(path string, content []byte) string {
	if len(content) > sampleSize {
		content = content[:sampleSize]
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return "text"
	}
	return lang
}

// IsVendored reports whether the path looks like vendored or generated
// third-party content that scans usually want to skip.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}
