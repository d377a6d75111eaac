package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
)

const meEndpoint = "/me"

// HandleGetMe serves the get_me tool: the authenticated user document
// with the per-slide credit cost reminder appended.
func (h *Handler) HandleGetMe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lg := h.newLog()
	lg.Info("fetching user details")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	result, err := h.client.Get(ctx, meEndpoint)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("failed to fetch user details")
		return mcp.NewToolResultText("Failed to fetch current user details."), nil
	}

	return mcp.NewToolResultText(jsonPretty(result) + "\n\nNote: Generating slides costs 1 credit per slide"), nil
}
