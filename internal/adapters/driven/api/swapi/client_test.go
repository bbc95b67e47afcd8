package swapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(Config{BaseURL: server.URL})
	return client, server
}

func TestClient_ListPage(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"uid": "1", "name": "Luke Skywalker"},
				{"uid": "2", "name": "C-3PO"}
			],
			"totalPages": 9
		}`))
	})
	defer server.Close()

	page, err := client.ListPage(context.Background(), "tok", domain.CategoryPeople, 2, 10, "")

	require.NoError(t, err)
	assert.Equal(t, "/people", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "name")
	require.Len(t, page.Results, 2)
	assert.Equal(t, "1", page.Results[0].UID)
	assert.Equal(t, "Luke Skywalker", page.Results[0].Name)
	assert.Equal(t, 9, page.TotalPages)
}

func TestClient_ListPage_NameFilter(t *testing.T) {
	var gotName string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		_, _ = w.Write([]byte(`{"results": [], "totalPages": 0}`))
	})
	defer server.Close()

	page, err := client.ListPage(context.Background(), "tok", domain.CategoryPeople, 1, 10, "luke")

	require.NoError(t, err)
	assert.Equal(t, "luke", gotName)
	assert.Empty(t, page.Results)
	assert.Equal(t, 1, page.TotalPages, "page count never drops below one")
}

func TestClient_GetDetail(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"result": {
				"uid": "1",
				"description": "A person",
				"properties": {"name": "Luke Skywalker", "height": "172"}
			}
		}`))
	})
	defer server.Close()

	record, err := client.GetDetail(context.Background(), "tok", domain.CategoryPeople, "1")

	require.NoError(t, err)
	assert.Equal(t, "1", record.UID)
	assert.Equal(t, "A person", record.Description)
	assert.Equal(t, "Luke Skywalker", record.Properties["name"])
}

func TestClient_GetDetail_MissingProperties(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"uid": "1"}}`))
	})
	defer server.Close()

	record, err := client.GetDetail(context.Background(), "tok", domain.CategoryPeople, "1")

	require.NoError(t, err)
	assert.NotNil(t, record.Properties)
	assert.Empty(t, record.Properties)
}

func TestClient_Unauthorized(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Unauthorized"}`))
	})
	defer server.Close()

	_, err := client.ListPage(context.Background(), "stale", domain.CategoryPeople, 1, 10, "")

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestClient_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "not found"}`))
	})
	defer server.Close()

	_, err := client.GetDetail(context.Background(), "tok", domain.CategoryPeople, "9999")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_SignIn(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/signin", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"token": "tok-123", "role": "admin"}`))
	})
	defer server.Close()

	session, err := client.SignIn(context.Background(), "admin@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "admin", session.Role)
}

func TestClient_SignIn_Rejected(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Invalid credentials"}`))
	})
	defer server.Close()

	_, err := client.SignIn(context.Background(), "admin@example.com", "wrongpw")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.False(t, IsUnauthorized(err), "a 400 is a rejection, not a stale token")
}

func TestClient_SignUp(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		_, _ = w.Write([]byte(`{"message": "User created"}`))
	})
	defer server.Close()

	message, err := client.SignUp(context.Background(), "new@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "User created", message)
}
