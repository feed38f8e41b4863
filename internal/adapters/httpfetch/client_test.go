package httpfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sitegrab/internal/domain"
)

func TestClient_Fetch_Success(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte("body{}"))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), Config{UserAgent: "sitegrab-test"})

	result, err := client.Fetch(context.Background(), srv.URL+"/style.css")
	require.NoError(t, err)

	assert.True(t, result.OK())
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/css", result.ContentType)
	assert.Equal(t, []byte("body{}"), result.Body)
	assert.Equal(t, "sitegrab-test", userAgent)
}

func TestClient_Fetch_DefaultUserAgent(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, err := NewClient(nil, Config{}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, userAgent)
}

func TestClient_Fetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := NewClient(srv.Client(), Config{}).Fetch(context.Background(), srv.URL+"/missing.png")
	require.NoError(t, err)

	assert.False(t, result.OK())
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Empty(t, result.Body)
}

func TestClient_Fetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(nil, Config{}).Fetch(context.Background(), url)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, fetchErr.IsNetwork())
	assert.Equal(t, url, fetchErr.URL)
}

func TestClient_Fetch_InvalidURL(t *testing.T) {
	_, err := NewClient(nil, Config{}).Fetch(context.Background(), "://bad")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, fetchErr.IsNetwork())
}

func TestClient_Fetch_BodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 20)))
	}))
	defer srv.Close()

	_, err := NewClient(srv.Client(), Config{MaxBodyBytes: 10}).Fetch(context.Background(), srv.URL)

	require.ErrorIs(t, err, ErrBodyTooLarge)
	require.ErrorIs(t, err, domain.ErrBodyTooLarge)
	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusOK, fetchErr.StatusCode)
}

func TestClient_Fetch_BodyAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 10)))
	}))
	defer srv.Close()

	result, err := NewClient(srv.Client(), Config{MaxBodyBytes: 10}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, result.Body, 10)
}

func TestClient_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(nil, Config{Timeout: 50 * time.Millisecond})

	_, err := client.Fetch(context.Background(), srv.URL)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, fetchErr.IsNetwork())
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.Client(), Config{}).Fetch(ctx, srv.URL)

	require.ErrorIs(t, err, context.Canceled)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)

	custom := Config{UserAgent: "ua", Timeout: time.Second, MaxBodyBytes: 5}.WithDefaults()
	assert.Equal(t, "ua", custom.UserAgent)
	assert.Equal(t, time.Second, custom.Timeout)
	assert.Equal(t, int64(5), custom.MaxBodyBytes)
}
