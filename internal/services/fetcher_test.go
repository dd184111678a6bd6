package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(maxSize int64) ResumeFetcher {
	return NewResumeFetcher(5*time.Second, maxSize, NewPDFParserService())
}

func TestFetchPlainText(t *testing.T) {
	body := "Senior engineer resume body with plenty of detail about past roles."
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	text, err := newTestFetcher(1 << 20).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, body, text)
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestFetcher(1 << 20).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestFetchSizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 200)))
	}))
	defer server.Close()

	_, err := newTestFetcher(100).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestFetchCorruptPDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.7 this is not a real pdf"))
	}))
	defer server.Close()

	_, err := newTestFetcher(1 << 20).Fetch(context.Background(), server.URL)
	require.Error(t, err)
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := newTestFetcher(1 << 20).Fetch(context.Background(), "://bad-url")
	assert.Error(t, err)
}
