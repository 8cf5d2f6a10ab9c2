package api

import (
	"context"
	"net/http"
)

// User is an account on the library server.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ListUsers returns every account. The server restricts this to
// authenticated callers.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.doJSON(ctx, http.MethodGet, c.url("users"), nil, &users)
	return users, err
}

// GetUser returns one account by identifier.
func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	if id == "" {
		return User{}, ValidationError{Field: "id", Reason: "must not be empty"}
	}
	var u User
	err := c.doJSON(ctx, http.MethodGet, c.url("users", id), nil, &u)
	return u, err
}
