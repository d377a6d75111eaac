package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
)

// HandleCheckAuthenticated serves the check_if_authenticated tool. The
// profile endpoint reports a rejected key through an "error" field in
// an otherwise successful response, so the body is inspected rather
// than the status code.
func (h *Handler) HandleCheckAuthenticated(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lg := h.newLog()
	lg.Info("checking API key validity")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	profile, err := h.client.Get(ctx, meEndpoint)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("failed to fetch profile")
		return mcp.NewToolResultText("Unable to fetch profile."), nil
	}

	doc, ok := profile.(map[string]any)
	if !ok {
		return mcp.NewToolResultText("Unable to fetch profile."), nil
	}
	if _, found := doc["error"]; found {
		lg.Warn("API rejected the configured key")
		return mcp.NewToolResultText("Invalid API key. Please check your credentials."), nil
	}
	if stringField(doc, "user_name", "") == "" {
		return mcp.NewToolResultText("Unable to fetch profile."), nil
	}

	return mcp.NewToolResultText("You are authenticated."), nil
}
