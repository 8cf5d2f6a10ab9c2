package cover

import (
	"os"
	"strings"
	"testing"
)

// Minimal JPEG header so the MIME sniffer picks the right extension.
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func TestCacheStoreFindRemove(t *testing.T) {
	c := NewCache(t.TempDir())
	const isbn = "9788498381498"

	if got := c.Find(isbn); got != "" {
		t.Fatalf("Find on empty cache = %q, want empty", got)
	}

	path, err := c.Store(isbn, jpegBytes)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(path, isbn+".jpg") {
		t.Errorf("Store path = %q, want %s.jpg suffix", path, isbn)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind at %s.tmp", path)
	}

	if got := c.Find(isbn); got != path {
		t.Errorf("Find = %q, want %q", got, path)
	}

	if err := c.Remove(isbn); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := c.Find(isbn); got != "" {
		t.Errorf("Find after Remove = %q, want empty", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove: %s", path)
	}
}

func TestCacheRemove_Missing(t *testing.T) {
	c := NewCache(t.TempDir())
	if err := c.Remove("9780000000000"); err != nil {
		t.Fatalf("Remove on empty cache: %v", err)
	}
}

func TestCacheStore_Overwrite(t *testing.T) {
	c := NewCache(t.TempDir())
	const isbn = "9781566199094"

	first, err := c.Store(isbn, jpegBytes)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Store(isbn, jpegBytes)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("overwrite produced a second path: %q vs %q", first, second)
	}
}
