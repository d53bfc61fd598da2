package blob

import (
	"context"
	"os"
	"path/filepath"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
)

// FSStore writes binary blobs under a single directory on local disk.
// The returned path is relative to the storage root, which is what gets
// persisted and later served.
type FSStore struct {
	dir string
}

func NewFSStore(cfg config.QRConfig) (commands.BlobStore, error) {
	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create blob storage directory")
	}
	return &FSStore{dir: cfg.StorageDir}, nil
}

func (s *FSStore) Save(_ context.Context, name string, data []byte) (string, error) {
	full := filepath.Join(s.dir, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", errs.Wrap(err, "failed to write blob")
	}
	return name, nil
}
