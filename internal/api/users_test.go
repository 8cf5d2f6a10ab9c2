package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://biblio.test/api/users",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
			body := `[
				{"id":"u1","name":"Ana","email":"ana@example.com","role":"admin","createdAt":"2024-01-15"},
				{"id":"u2","name":"Luis","email":"luis@example.com"}
			]`
			return httpmock.NewStringResponse(200, body), nil
		})

	c := newTestClient(transport, "tok-123")
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "admin", users[0].Role)
	assert.Empty(t, users[1].Role)
}

func TestGetUser(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://biblio.test/api/users/u1",
		httpmock.NewStringResponder(200, `{"id":"u1","name":"Ana","email":"ana@example.com"}`))

	c := newTestClient(transport, "tok-123")
	u, err := c.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
}

func TestGetUser_EmptyID(t *testing.T) {
	c := newTestClient(httpmock.NewMockTransport(), "tok-123")
	_, err := c.GetUser(context.Background(), "")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
}
