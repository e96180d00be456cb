package exa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchReq() Request {
	return Search(SearchRequest{
		Query:      "rust ownership",
		Type:       SearchAuto,
		NumResults: 3,
		Contents:   Contents{Text: TextOptions{MaxCharacters: DefaultMaxCharacters}, Livecrawl: LivecrawlPreferred},
	})
}

func TestExecuteSendsHeadersAndBody(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"query":"rust ownership","type":"auto","numResults":3,"contents":{"text":{"maxCharacters":3000},"livecrawl":"preferred"}}`, string(raw))

		_, _ = w.Write([]byte(`{"results":[{"title":"A"},{"title":"B"}]}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	resp, execErr := c.Execute(context.Background(), searchReq(), "key-1")
	require.Nil(t, execErr)
	assert.Equal(t, 2, resp.Results)
	assert.False(t, resp.Empty())
	assert.JSONEq(t, `{"results":[{"title":"A"},{"title":"B"}]}`, string(resp.Body))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestExecuteSoftEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"missing": `{"requestId":"x"}`,
		"null":    `{"results":null}`,
		"empty":   `{"results":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			resp, execErr := NewClient(WithBaseURL(srv.URL)).Execute(context.Background(), searchReq(), "k")
			require.Nil(t, execErr)
			assert.True(t, resp.Empty())
		})
	}
}

func TestExecuteNon2xxCarriesStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "rate limited"})
	}))
	defer srv.Close()

	_, execErr := NewClient(WithBaseURL(srv.URL)).Execute(context.Background(), searchReq(), "k")
	require.NotNil(t, execErr)
	assert.Equal(t, http.StatusTooManyRequests, execErr.StatusCode)
	assert.Equal(t, "429", execErr.Status())
	assert.Equal(t, "rate limited", execErr.Message)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "no retries")
}

func TestExecuteNon2xxWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, execErr := NewClient(WithBaseURL(srv.URL)).Execute(context.Background(), searchReq(), "k")
	require.NotNil(t, execErr)
	assert.Equal(t, "request failed with status code 502", execErr.Message)
}

func TestExecuteTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	req := searchReq()
	req.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, execErr := NewClient(WithBaseURL(srv.URL)).Execute(context.Background(), req, "k")
	require.NotNil(t, execErr)
	assert.True(t, execErr.Timeout)
	assert.Equal(t, "unknown", execErr.Status())
	assert.Contains(t, execErr.Message, "timed out")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestExecuteTransportFailureIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, execErr := NewClient(WithBaseURL(url)).Execute(context.Background(), searchReq(), "k")
	require.NotNil(t, execErr)
	assert.Equal(t, 0, execErr.StatusCode)
	assert.False(t, execErr.Timeout)
}

func TestExecuteInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, execErr := NewClient(WithBaseURL(srv.URL)).Execute(context.Background(), searchReq(), "k")
	require.NotNil(t, execErr)
	assert.Equal(t, "unknown", execErr.Status())
}

func TestExecuteRejectsInvalidRequestWithoutIO(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	req := searchReq()
	req.Body = SearchRequest{}
	_, execErr := NewClient(WithBaseURL(srv.URL)).Execute(context.Background(), req, "k")
	require.NotNil(t, execErr)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestCredentialsArePerCall(t *testing.T) {
	keys := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get("x-api-key")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, _ = c.Execute(context.Background(), searchReq(), "first")
	_, _ = c.Execute(context.Background(), searchReq(), "second")
	assert.Equal(t, "first", <-keys)
	assert.Equal(t, "second", <-keys)
}
