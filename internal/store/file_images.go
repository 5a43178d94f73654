package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
)

// fileImageStorage keeps uploaded images in a flat local directory. Filenames
// are generated by the service layer, so the directory never sees
// user-controlled paths.
type fileImageStorage struct {
	dir      string
	maxBytes int64
	logger   *logger.Logger
}

// NewFileImageStorage creates the upload directory if needed and returns a
// directory-backed [ImageStorage].
func NewFileImageStorage(conf config.Images, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(conf.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating images dir %q: %w", conf.Dir, err)
	}

	log.Debug().Str("dir", conf.Dir).Msg("using local image storage")
	return &fileImageStorage{
		dir:      conf.Dir,
		maxBytes: conf.MaxUploadBytes,
		logger:   log,
	}, nil
}

func (f *fileImageStorage) Save(ctx context.Context, filename string, content io.Reader) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(f.dir, filepath.Base(filename))
	file, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "*fileImageStorage.Save").Str("filename", filename).Msg("error creating image file")
		return fmt.Errorf("error creating image file: %w", err)
	}
	defer file.Close()

	// Copy one byte past the limit so an oversized stream is detected
	// without buffering the whole upload.
	written, err := io.Copy(file, io.LimitReader(content, f.maxBytes+1))
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("error writing image file: %w", err)
	}
	if written > f.maxBytes {
		_ = os.Remove(path)
		return ErrImageTooLarge
	}

	return nil
}

func (f *fileImageStorage) Delete(ctx context.Context, filename string) error {
	path := filepath.Join(f.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting image file: %w", err)
	}
	return nil
}

// URL returns the path the HTTP server exposes the file under.
func (f *fileImageStorage) URL(filename string) string {
	return "/uploads/" + filepath.Base(filename)
}
