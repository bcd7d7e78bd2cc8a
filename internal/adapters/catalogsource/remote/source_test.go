package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-adoption-catalog/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/pets.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","birthYear":2020}]`))
	}))
	defer srv.Close()

	src, err := New(Config{URL: srv.URL + "/data/pets.json", Timeout: time.Second})
	require.NoError(t, err)

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","birthYear":2020}]`, string(raw))
}

func TestSource_FetchRelativeToBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/pets.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src, err := New(Config{URL: srv.URL + "/", Path: "data/pets.json", Timeout: time.Second})
	require.NoError(t, err)

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{URL: "::bad", Path: "/data/pets.json"})
	require.Error(t, err)
}

func TestSource_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	src := NewWithClient(httpclient.New(time.Second), srv.URL)
	_, err := src.Fetch(context.Background())
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusGone, httpErr.StatusCode)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}
