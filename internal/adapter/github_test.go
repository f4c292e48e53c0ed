package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGistClient(baseURL string) *GithubGistClient {
	return NewGithubGistClient(config.Gist{
		BaseURL: baseURL,
		Token:   "gh-token",
		GistID:  "abc123",
		Timeout: time.Second,
	}, logger.Nop())
}

func TestCreateComment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gists/abc123/comments", r.URL.Path)
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "digest text", payload["body"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 987654}`))
	}))
	defer server.Close()

	client := newGistClient(server.URL)

	commentID, err := client.CreateComment(context.Background(), "digest text")
	require.NoError(t, err)
	assert.Equal(t, int64(987654), commentID)
}

func TestCreateComment_HostRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newGistClient(server.URL)

	_, err := client.CreateComment(context.Background(), "digest text")
	require.ErrorIs(t, err, ErrGistPublish)
}

func TestEditComment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/gists/abc123/comments/987654", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 987654}`))
	}))
	defer server.Close()

	client := newGistClient(server.URL)

	require.NoError(t, client.EditComment(context.Background(), 987654, "edited text"))
}

func TestEditComment_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newGistClient(server.URL)

	err := client.EditComment(context.Background(), 987654, "edited text")
	require.ErrorIs(t, err, ErrGistEdit)
}

func TestDeleteComment_Success(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newGistClient(server.URL)

	require.NoError(t, client.DeleteComment(context.Background(), 987654))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/gists/abc123/comments/987654", path)
}

func TestDeleteComment_HostRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newGistClient(server.URL)

	err := client.DeleteComment(context.Background(), 987654)
	require.ErrorIs(t, err, ErrGistDelete)
}

func TestCreateComment_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewGithubGistClient(config.Gist{
		BaseURL: server.URL,
		Token:   "gh-token",
		GistID:  "abc123",
		Timeout: 20 * time.Millisecond,
	}, logger.Nop())

	_, err := client.CreateComment(context.Background(), "digest text")
	require.ErrorIs(t, err, ErrUpstreamTimeout)
}
