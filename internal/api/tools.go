package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

type mergeRequest struct {
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

func validateMerge(oldValue, newValue string) error {
	if newValue == "" {
		return ValidationError{Field: "newValue", Reason: "must not be empty"}
	}
	if oldValue == newValue {
		return ValidationError{Field: "newValue", Reason: "must differ from the old value"}
	}
	return nil
}

// MergeAuthor rewrites every record whose author equals oldValue to
// carry newValue instead. The rewrite happens server-side.
func (c *Client) MergeAuthor(ctx context.Context, oldValue, newValue string) error {
	if err := validateMerge(oldValue, newValue); err != nil {
		return err
	}
	body := mergeRequest{OldValue: oldValue, NewValue: newValue}
	return c.doJSON(ctx, http.MethodPost, c.url("tools", "merge-author"), body, nil)
}

// MergePublisher is the publisher counterpart of MergeAuthor.
func (c *Client) MergePublisher(ctx context.Context, oldValue, newValue string) error {
	if err := validateMerge(oldValue, newValue); err != nil {
		return err
	}
	body := mergeRequest{OldValue: oldValue, NewValue: newValue}
	return c.doJSON(ctx, http.MethodPost, c.url("tools", "merge-publisher"), body, nil)
}

// ExportCSV downloads the full catalog as CSV.
func (c *Client) ExportCSV(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("books", "export"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

// ImportCounts summarize a CSV import.
type ImportCounts struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ImportCSV uploads a CSV file and returns the per-row outcome counts.
func (c *Client) ImportCSV(ctx context.Context, filename string, content io.Reader) (ImportCounts, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return ImportCounts{}, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return ImportCounts{}, err
	}
	if err := w.Close(); err != nil {
		return ImportCounts{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("books", "import"), &buf)
	if err != nil {
		return ImportCounts{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := c.do(req)
	if err != nil {
		return ImportCounts{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return ImportCounts{}, err
	}
	var counts ImportCounts
	if err := json.NewDecoder(resp.Body).Decode(&counts); err != nil {
		return ImportCounts{}, err
	}
	return counts, nil
}
