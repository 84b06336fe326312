// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EncodesParamsAndHeaders(t *testing.T) {
	var gotQuery url.Values
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), Timeout: time.Second, UserAgent: "test/0.1"}
	status, body, err := c.Get(context.Background(), ts.URL+"?fixed=1", url.Values{
		"db":   {"pubmed"},
		"term": {"breast cancer & BRCA1"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, "1", gotQuery.Get("fixed"))
	assert.Equal(t, "pubmed", gotQuery.Get("db"))
	assert.Equal(t, "breast cancer & BRCA1", gotQuery.Get("term"))
}

func TestGet_NonOKStatusIsNotAnError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client()}
	status, body, err := c.Get(context.Background(), ts.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "slow down", string(body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retries")
}

func TestGet_TimeoutFailsFast(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c := &Client{HTTP: ts.Client(), Timeout: 50 * time.Millisecond}
	start := time.Now()
	_, _, err := c.Get(context.Background(), ts.URL, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGet_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	addr := ts.URL
	ts.Close()

	c := NewClient(time.Second, "")
	_, _, err := c.Get(context.Background(), addr, nil)
	assert.Error(t, err)
}

func TestGet_BadURL(t *testing.T) {
	c := NewClient(time.Second, "")
	_, _, err := c.Get(context.Background(), "://missing-scheme", nil)
	assert.Error(t, err)
}

func TestGet_BodyLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer ts.Close()

	old := MaxBodyBytes
	MaxBodyBytes = 4
	defer func() { MaxBodyBytes = old }()

	c := &Client{HTTP: ts.Client()}
	_, body, err := c.Get(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(body))
}
