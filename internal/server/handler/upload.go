package handler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
	"github.com/slidespeak/slidespeak-mcp-go/internal/slidespeak"
)

// HandleUploadDocument serves the upload_document tool. The file must
// exist locally and carry one of the supported document extensions
// before the multipart upload is attempted.
func (h *Handler) HandleUploadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString("file_path")
	if err != nil {
		return nil, err
	}

	lg := h.newLog()
	lg.WithPayload(map[string]interface{}{"file_path": filePath}).Info("uploading document")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		lg.Warn("upload file not found")
		return mcp.NewToolResultText("File not found: " + filePath), nil
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if !slidespeak.SupportsUploadExtension(ext) {
		lg.WithPayload(map[string]interface{}{"extension": ext}).Warn("unsupported upload file type")
		return mcp.NewToolResultText(fmt.Sprintf("Unsupported file type: %s. Supported types: %s",
			ext, strings.Join(slidespeak.SupportedUploadExtensions, ", "))), nil
	}

	data, err := h.client.Upload(ctx, filePath)
	if err != nil {
		var apiErr *slidespeak.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == slidespeak.ErrKindHTTPStatus {
			return mcp.NewToolResultText(fmt.Sprintf("Upload failed: %d %s", apiErr.Status, apiErr.Body)), nil
		}
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("document upload failed")
		return mcp.NewToolResultText("Upload failed: " + err.Error()), nil
	}

	return mcp.NewToolResultText(jsonPretty(data)), nil
}
