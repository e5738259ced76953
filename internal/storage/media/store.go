package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store persists uploaded attachment blobs on disk under the media root,
// partitioned by year/month so directories stay small. File names are
// regenerated to avoid collisions and unsafe client-supplied names; only the
// extension of the original name is kept.
type Store struct {
	root string
	now  func() time.Time
}

// NewStore creates the store and ensures the media root exists.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("media root must be provided")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Store{root: root, now: time.Now}, nil
}

// Save writes the attachment and returns its media-relative path, using
// forward slashes regardless of platform.
func (s *Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	now := s.now()
	rel := path.Join("order_attachments",
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
		uuid.NewString()+ext,
	)

	dst := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create attachment: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write attachment: %w", err)
	}
	return rel, nil
}

// Path maps a media-relative path back to its location on disk.
func (s *Store) Path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
