package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentRepositories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"hello-world","html_url":"https://github.com/octocat/hello-world","stargazers_count":42},
			{"name":"spoon-knife","html_url":"https://github.com/octocat/spoon-knife","forks_count":7}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	repos, err := client.RecentRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 42, repos[0].StargazersCount)
	assert.Equal(t, 7, repos[1].ForksCount)
}

func TestRecentRepositoriesUserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.RecentRepositories(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecentRepositoriesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.RecentRepositories(context.Background(), "octocat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
