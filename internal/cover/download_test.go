package cover

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
)

func newTestDownloader(transport *httpmock.MockTransport) *Downloader {
	return &Downloader{
		http: &http.Client{Transport: transport, Timeout: 5 * time.Second},
	}
}

func TestDownload_DirectSuccess(t *testing.T) {
	transport := httpmock.NewMockTransport()
	resp := httpmock.NewBytesResponse(200, []byte("image-bytes"))
	resp.Header.Set("Content-Type", "image/png")
	transport.RegisterResponder("GET", "https://covers.test/a.png",
		httpmock.ResponderFromResponse(resp))

	d := newTestDownloader(transport)
	b, mime, err := d.Download(context.Background(), "https://covers.test/a.png")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(b) != "image-bytes" {
		t.Errorf("body = %q", b)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}
}

func TestDownload_FallsBackToPassthrough(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://covers.test/a.jpg",
		httpmock.NewStringResponder(403, "forbidden"))
	// Passthrough services receive the encoded original URL as a query;
	// match any request to the first service host.
	transport.RegisterResponder("GET", `=~^https://api\.allorigins\.win/raw`,
		httpmock.NewBytesResponder(200, []byte("proxied")))

	d := newTestDownloader(transport)
	b, mime, err := d.Download(context.Background(), "https://covers.test/a.jpg")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(b) != "proxied" {
		t.Errorf("body = %q", b)
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q, want default image/jpeg", mime)
	}
}

func TestDownload_AllFail(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterNoResponder(httpmock.NewStringResponder(500, "boom"))

	d := newTestDownloader(transport)
	_, _, err := d.Download(context.Background(), "https://covers.test/a.jpg")
	if err == nil {
		t.Fatal("expected error when every strategy fails")
	}
	var de DownloadError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want DownloadError", err)
	}
	if len(de.Attempts) != len(passthroughs)+1 {
		t.Errorf("attempts = %d, want %d", len(de.Attempts), len(passthroughs)+1)
	}
}
