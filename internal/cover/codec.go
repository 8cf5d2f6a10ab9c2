package cover

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	lru "github.com/hashicorp/golang-lru/v2"
)

// PlaceholderURL is shown whenever a book has no usable cover.
const PlaceholderURL = "https://via.placeholder.com/128x192?text=No+Cover"

// DecodeError indicates a malformed base64 or byte payload.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Errorf("decoding cover: %w", e.Err).Error()
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// dataURLs memoizes rendered data URLs by content hash. Repeated
// renders of the same cover (list redraws) skip re-encoding.
var dataURLs, _ = lru.New[string, string](128)

// DataURL encodes raw image bytes as a data URL. The MIME type is
// sniffed from the content, defaulting to image/jpeg. Empty input
// yields the placeholder, never an error.
func DataURL(b []byte) string {
	if len(b) == 0 {
		return PlaceholderURL
	}
	sum := sha256.Sum256(b)
	key := hex.EncodeToString(sum[:])
	if url, ok := dataURLs.Get(key); ok {
		return url
	}
	mime := "image/jpeg"
	if mt := mimetype.Detect(b); strings.HasPrefix(mt.String(), "image/") {
		mime = mt.String()
	}
	url := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
	dataURLs.Add(key, url)
	return url
}

// Decode converts base64 text to raw bytes, stripping a leading
// data:...;base64, prefix if present.
func Decode(s string) ([]byte, error) {
	if idx := strings.Index(s, ","); idx >= 0 && strings.HasPrefix(s, "data:") {
		s = s[idx+1:]
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, DecodeError{Err: err}
	}
	return b, nil
}

// DisplayURL renders any payload as a URL usable by an image viewer.
// Soft-fails to the placeholder; never errors.
func (p Payload) DisplayURL() string {
	switch p.kind {
	case KindBytes:
		return DataURL(p.data)
	case KindBase64:
		if strings.HasPrefix(p.str, "data:") {
			return p.str
		}
		b, err := Decode(p.str)
		if err != nil {
			return PlaceholderURL
		}
		return DataURL(b)
	case KindURL:
		if strings.HasPrefix(p.str, "http") || strings.HasPrefix(p.str, "data:") {
			return p.str
		}
		// Relative paths are served from the backend's /covers tree.
		return "/covers/" + path.Base(p.str)
	default:
		return PlaceholderURL
	}
}

// AsBase64 returns the payload converted to plain base64 text, the
// canonical form for update submissions. URL payloads cannot be
// converted locally and are returned unchanged.
func (p Payload) AsBase64() Payload {
	switch p.kind {
	case KindBytes:
		return Base64(base64.StdEncoding.EncodeToString(p.data))
	default:
		return p
	}
}
