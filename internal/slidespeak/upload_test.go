package slidespeak

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUploadFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestUploadSendsMultipartFile(t *testing.T) {
	content := []byte("%PDF-1.4\nquarterly figures\n%%EOF\n")
	path := writeUploadFixture(t, "report.pdf", content)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/document/upload", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("X-API-Key"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "report.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		received, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, received)

		w.Write([]byte(`{"task_id":"task-up","document_uuid":"doc-1"}`))
	}))
	defer server.Close()

	client := newTestClient(t, testOptions(server.URL, "sk-test"))
	result, err := client.Upload(context.Background(), path)
	require.NoError(t, err)

	doc, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "task-up", doc["task_id"])
	assert.Equal(t, "doc-1", doc["document_uuid"])
}

func TestUploadWithoutKeyMakesNoNetworkCalls(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	path := writeUploadFixture(t, "deck.pptx", []byte("slides"))
	client := newTestClient(t, testOptions(server.URL, ""))

	_, err := client.Upload(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Equal(t, int32(0), calls.Load())
}

func TestUploadMissingFile(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(t, testOptions(server.URL, "sk-test"))
	_, err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.docx"))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, ErrKindTransport, apiErr.Kind)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDetectMIMETypeFallsBack(t *testing.T) {
	assert.Equal(t, "application/octet-stream", DetectMIMEType(filepath.Join(t.TempDir(), "nope.bin")))
}

func TestSupportsUploadExtension(t *testing.T) {
	for _, ext := range SupportedUploadExtensions {
		assert.True(t, SupportsUploadExtension(ext), ext)
	}
	assert.False(t, SupportsUploadExtension(".txt"))
	assert.False(t, SupportsUploadExtension(""))
	assert.False(t, SupportsUploadExtension("pdf"))
}
