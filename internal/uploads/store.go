package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store writes uploaded attachments into a single content directory and hands
// back the generated filename. Stored files are never deleted; rows that
// reference them only ever hold the name as a string.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Ingest streams src into a new file named by a nanosecond timestamp plus the
// original extension. The write handle is always closed, and a partially
// written file is removed on any failure. Identical content uploaded twice
// produces two independent files.
func (s *Store) Ingest(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	for {
		name := strconv.FormatInt(time.Now().UnixNano(), 10) + ext
		path := filepath.Join(s.dir, name)

		dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			// Two ingests landed on the same nanosecond; take the next one.
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create upload file: %w", err)
		}

		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write upload: %w", err)
		}
		if err := dst.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to close upload: %w", err)
		}
		return name, nil
	}
}

// SaveMultipart ingests a multipart form file.
func (s *Store) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()
	return s.Ingest(f, fh.Filename)
}
