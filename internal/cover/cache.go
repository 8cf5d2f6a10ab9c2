package cover

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Cache stores downloaded cover images on disk, one file per ISBN.
type Cache struct {
	baseDir string
}

// NewCache creates a Cache rooted at baseDir.
func NewCache(baseDir string) *Cache {
	return &Cache{baseDir: baseDir}
}

// Path returns the cache path for an ISBN with the given extension.
func (c *Cache) Path(isbn, ext string) string {
	return filepath.Join(c.baseDir, "covers", isbn+ext)
}

// Store writes image bytes for an ISBN, deriving the file extension
// from the MIME type. Returns the final file path.
func (c *Cache) Store(isbn string, data []byte) (string, error) {
	dir := filepath.Join(c.baseDir, "covers")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	ext := mimetype.Detect(data).Extension()
	if ext == "" {
		ext = ".jpg"
	}
	dest := c.Path(isbn, ext)
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return dest, nil
}

// Find returns the cached cover path for an ISBN, or empty string.
func (c *Cache) Find(isbn string) string {
	dir := filepath.Join(c.baseDir, "covers")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		name := e.Name()
		if strings.TrimSuffix(name, filepath.Ext(name)) == isbn {
			return filepath.Join(dir, name)
		}
	}
	return ""
}

// Remove deletes the cached cover for an ISBN if it exists.
func (c *Cache) Remove(isbn string) error {
	path := c.Find(isbn)
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
