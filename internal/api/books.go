package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bookloft/biblioctl/internal/catalog"
)

// ListMyBooks fetches the authenticated user's full book list.
func (c *Client) ListMyBooks(ctx context.Context) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := c.doJSON(ctx, http.MethodGet, c.url("books", "my"), nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single record by identifier.
func (c *Client) GetBook(ctx context.Context, id string) (catalog.Book, error) {
	var book catalog.Book
	if err := c.doJSON(ctx, http.MethodGet, c.url("books", id), nil, &book); err != nil {
		return catalog.Book{}, err
	}
	return book, nil
}

// CreateBook persists a manually entered record and returns it with
// its server-assigned identifier.
func (c *Client) CreateBook(ctx context.Context, book catalog.Book) (catalog.Book, error) {
	if book.Title == "" {
		return catalog.Book{}, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if book.Author == "" {
		return catalog.Book{}, ValidationError{Field: "author", Reason: "must not be empty"}
	}
	var created catalog.Book
	if err := c.doJSON(ctx, http.MethodPost, c.url("books"), book, &created); err != nil {
		return catalog.Book{}, err
	}
	return created, nil
}

// UpdateBook replaces the full record with the given identifier.
func (c *Client) UpdateBook(ctx context.Context, id string, book catalog.Book) error {
	if book.Title == "" {
		return ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if book.Author == "" {
		return ValidationError{Field: "author", Reason: "must not be empty"}
	}
	return c.doJSON(ctx, http.MethodPut, c.url("books", id), book, nil)
}

// DeleteBook removes the record with the given identifier.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.url("books", id), nil, nil)
}

// ImportByISBN asks the server to create a record from an external
// metadata lookup. The language hint narrows the lookup when set.
func (c *Client) ImportByISBN(ctx context.Context, isbn, language string) (catalog.Book, error) {
	if isbn == "" {
		return catalog.Book{}, ValidationError{Field: "isbn", Reason: "must not be empty"}
	}
	body := map[string]string{"isbn": isbn}
	if language != "" {
		body["language"] = language
	}
	var book catalog.Book
	if err := c.doJSON(ctx, http.MethodPost, c.url("books", "import-from-google"), body, &book); err != nil {
		return catalog.Book{}, err
	}
	return book, nil
}

// Candidate is one result from the metadata search.
type Candidate struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher,omitempty"`
	Summary   string `json:"summary,omitempty"`
	ISBN      string `json:"isbn,omitempty"`
	CoverURL  string `json:"coverUrl,omitempty"`
	Language  string `json:"language,omitempty"`
}

// SearchMetadata queries the backend's book-metadata proxy by title,
// author, and optional language.
func (c *Client) SearchMetadata(ctx context.Context, title, author, language string) ([]Candidate, error) {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if author != "" {
		q.Set("author", author)
	}
	if language != "" {
		q.Set("language", language)
	}
	if len(q) == 0 {
		return nil, ValidationError{Field: "query", Reason: "title or author required"}
	}
	var results []Candidate
	u := c.url("books", "googlebooks", "search") + "?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// UploadResult is the server's stored location for an uploaded cover.
type UploadResult struct {
	RelativePath  string `json:"relativePath"`
	ThumbnailPath string `json:"thumbnailPath,omitempty"`
}

// UploadCover submits a cover image for an ISBN. The image may be an
// absolute URL (server fetches it) or a data URL (inline payload).
func (c *Client) UploadCover(ctx context.Context, imageURL, isbn string) (UploadResult, error) {
	if isbn == "" {
		return UploadResult{}, ValidationError{Field: "isbn", Reason: "must not be empty"}
	}
	body := map[string]string{"imageUrl": imageURL, "isbn": isbn}
	var res UploadResult
	if err := c.doJSON(ctx, http.MethodPost, c.url("books", "upload-cover"), body, &res); err != nil {
		return UploadResult{}, err
	}
	return res, nil
}
