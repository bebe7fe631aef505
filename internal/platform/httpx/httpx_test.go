package httpx_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/tutor-api/internal/platform/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPost(t *testing.T) {
	t.Parallel()

	type captured struct {
		header http.Header
		body   map[string]any
	}
	requests := make(chan captured, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		requests <- captured{header: r.Header.Clone(), body: body}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := httpx.NewClient(time.Second)
	header := http.Header{}
	header.Set("Authorization", "Bearer test-key")

	resp, err := client.Post(context.Background(), server.URL, header, map[string]string{"model": "m"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))

	got := <-requests
	assert.Equal(t, "Bearer test-key", got.header.Get("Authorization"))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.Equal(t, "m", got.body["model"])
}

func TestClientPostNon2xxIsNotAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	resp, err := httpx.NewClient(time.Second).Post(context.Background(), server.URL, nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.Contains(t, string(resp.Body), "upstream down")
}

func TestClientPostTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := httpx.NewClient(50*time.Millisecond).Post(context.Background(), server.URL, nil, struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientPostEncodeFailure(t *testing.T) {
	t.Parallel()

	_, err := httpx.NewClient(time.Second).Post(context.Background(), "http://unused.invalid", nil, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode request")
}

func TestNewClientDefaultsTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, httpx.DefaultTimeout, httpx.NewClient(0).Timeout)
}
