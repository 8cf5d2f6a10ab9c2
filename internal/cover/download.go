package cover

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// passthroughs are fetch services tried, in order, when a direct
// download fails (typically a host that rejects non-browser clients).
var passthroughs = []string{
	"https://api.allorigins.win/raw?url=",
	"https://api.codetabs.com/v1/proxy?quest=",
}

// DownloadError reports that every download strategy failed.
type DownloadError struct {
	URL      string
	Attempts []error
}

func (e DownloadError) Error() string {
	parts := make([]string, len(e.Attempts))
	for i, err := range e.Attempts {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("downloading %s: all %d attempts failed: %s",
		e.URL, len(e.Attempts), strings.Join(parts, "; "))
}

func (e DownloadError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1]
}

// Downloader fetches remote cover images.
type Downloader struct {
	http *http.Client
}

// NewDownloader returns a Downloader with a modest timeout per attempt.
func NewDownloader() *Downloader {
	return &Downloader{
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Download fetches an image, trying the URL directly first and then
// each passthrough service in priority order. Returns the image bytes
// and the reported MIME type.
func (d *Downloader) Download(ctx context.Context, imageURL string) ([]byte, string, error) {
	targets := make([]string, 0, len(passthroughs)+1)
	targets = append(targets, imageURL)
	for _, p := range passthroughs {
		targets = append(targets, p+url.QueryEscape(imageURL))
	}

	var attempts []error
	for _, target := range targets {
		b, mime, err := d.fetch(ctx, target)
		if err == nil {
			return b, mime, nil
		}
		attempts = append(attempts, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, "", DownloadError{URL: imageURL, Attempts: attempts}
}

func (d *Downloader) fetch(ctx context.Context, target string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "image/*,*/*")
	resp, err := d.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("GET %s: status %d", target, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" || !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return b, mime, nil
}
