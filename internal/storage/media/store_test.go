package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func TestSavePartitionsByYearAndMonth(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)
	}

	rel, err := store.Save(context.Background(), "thesis draft.pdf", strings.NewReader("%PDF-1.7"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(rel, "order_attachments/2025/03/") {
		t.Fatalf("unexpected attachment path %q", rel)
	}
	if !strings.HasSuffix(rel, ".pdf") {
		t.Fatalf("expected original extension kept, got %q", rel)
	}
	if strings.Contains(rel, "thesis") {
		t.Fatalf("client-supplied name must not leak into the path: %q", rel)
	}

	data, err := os.ReadFile(store.Path(rel))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "%PDF-1.7" {
		t.Fatalf("unexpected stored content %q", data)
	}
}

func TestSaveExtensionLowercased(t *testing.T) {
	store := newTestStore(t)

	rel, err := store.Save(context.Background(), "NOTES.TXT", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(rel, ".txt") {
		t.Fatalf("expected lower-cased extension, got %q", rel)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		rel, err := store.Save(context.Background(), "same.pdf", strings.NewReader(fmt.Sprintf("v%d", i)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[rel] {
			t.Fatalf("duplicate path %q", rel)
		}
		seen[rel] = true
	}
}

func TestSaveCancelledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Save(ctx, "a.pdf", strings.NewReader("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestSaveRemovesPartialFileOnCopyFailure(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(context.Background(), "doc.docx", failingReader{})
	if err == nil {
		t.Fatal("expected error from failing reader")
	}

	var files int
	_ = walkFiles(store.root, &files)
	if files != 0 {
		t.Fatalf("expected no leftover files, found %d", files)
	}
}

func walkFiles(root string, count *int) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := walkFiles(root+string(os.PathSeparator)+e.Name(), count); err != nil {
				return err
			}
			continue
		}
		*count++
	}
	return nil
}

func TestNewStoreRequiresRoot(t *testing.T) {
	if _, err := NewStore(""); err == nil {
		t.Fatal("expected error for empty root")
	}
}
