package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// Store writes classified uploads to the local filesystem under a fixed root,
// one folder per category.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Save classifies the upload, writes its bytes under the category folder and
// returns the resulting attachment reference. Any failure leaves no partial
// upload counted as success: the caller must abort the whole send.
func (s *Store) Save(mediaType, originalFilename string, r io.Reader) (*domain.Attachment, error) {
	category := Classify(mediaType)
	name := StorageName(originalFilename)

	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	// Close can surface a deferred flush failure; only a clean close counts
	// as durably written.
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	return &domain.Attachment{
		Category: category,
		Name:     name,
		Path:     filepath.Join(category, name),
	}, nil
}
