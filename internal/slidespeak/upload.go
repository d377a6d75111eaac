package slidespeak

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/logger"
)

// uploadEndpoint receives document uploads for later incorporation into
// generated presentations.
const uploadEndpoint = "/document/upload"

// SupportedUploadExtensions lists the document types the remote service
// accepts, by file extension.
var SupportedUploadExtensions = []string{".pptx", ".ppt", ".docx", ".doc", ".xlsx", ".pdf"}

// SupportsUploadExtension reports whether ext (with leading dot,
// case-insensitive) is an accepted document type.
func SupportsUploadExtension(ext string) bool {
	for _, supported := range SupportedUploadExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// DetectMIMEType sniffs the file's content type, falling back to a
// generic binary type when detection fails.
func DetectMIMEType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return mtype.String()
}

// Upload sends the file at path to the document upload endpoint as a
// multipart form, with the file under the "file" field. The part's
// content type is sniffed from the file itself. The decoded JSON
// response carries the upload's task_id and document_uuid.
func (c *Client) Upload(ctx context.Context, path string) (any, error) {
	lg := logger.New(clientService, uuid.NewString())

	if !c.HasAPIKey() {
		lg.WithError(models.ErrorInfo{
			Message: ErrMissingAPIKey.Error(),
			Type:    string(ErrKindMissingKey),
		}).Error("API key is missing, refusing to upload document")
		return nil, &APIError{Kind: ErrKindMissingKey, Method: http.MethodPost, Endpoint: uploadEndpoint, Err: ErrMissingAPIKey}
	}

	body, contentType, err := buildUploadBody(path)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error(), Type: string(ErrKindTransport)}).
			Error("failed to prepare document upload")
		return nil, &APIError{Kind: ErrKindTransport, Method: http.MethodPost, Endpoint: uploadEndpoint, Err: err}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.opts.BaseURL+uploadEndpoint, body)
	if err != nil {
		return nil, &APIError{Kind: ErrKindTransport, Method: http.MethodPost, Endpoint: uploadEndpoint, Err: err}
	}
	c.setCommonHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.send(req, lg, http.MethodPost, uploadEndpoint)
}

// buildUploadBody assembles the multipart form body for one file.
func buildUploadBody(path string) (*bytes.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	header.Set("Content-Type", DetectMIMEType(path))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart section: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
