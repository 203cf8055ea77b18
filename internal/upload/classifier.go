package upload

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage categories an upload can be classified into. The category doubles as
// the folder name under the upload root.
const (
	CategoryImage    = "images"
	CategoryVideo    = "videos"
	CategoryAudio    = "audios"
	CategoryPDF      = "pdf"
	CategoryDocument = "documents"
	CategoryArchive  = "archives"
	CategoryOther    = "others"
)

// Classify maps a declared media type to a storage category. Unknown types
// fall back to CategoryOther.
func Classify(mediaType string) string {
	switch {
	case strings.HasPrefix(mediaType, "image"):
		return CategoryImage
	case strings.HasPrefix(mediaType, "video"):
		return CategoryVideo
	case strings.HasPrefix(mediaType, "audio"):
		return CategoryAudio
	case mediaType == "application/pdf":
		return CategoryPDF
	case strings.HasPrefix(mediaType, "application/vnd"),
		strings.HasPrefix(mediaType, "application/msword"):
		return CategoryDocument
	case mediaType == "application/zip", mediaType == "application/x-rar-compressed":
		return CategoryArchive
	default:
		return CategoryOther
	}
}

// StorageName generates a collision-free storage name for an upload. Only the
// extension of the client-supplied filename is kept; the base name is replaced
// with a random token so uploads can never collide or traverse paths.
func StorageName(originalFilename string) string {
	ext := filepath.Ext(filepath.Base(originalFilename))
	return uuid.NewString() + ext
}
