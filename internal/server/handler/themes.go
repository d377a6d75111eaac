package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
)

const themesEndpoint = "/presentation/themes"

// HandleGetThemes serves the get_themes tool: custom brand themes that
// can be used in place of a stock template name.
func (h *Handler) HandleGetThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lg := h.newLog()
	lg.Info("fetching available themes")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	data, err := h.client.Get(ctx, themesEndpoint)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("failed to fetch themes")
		return mcp.NewToolResultText("Unable to fetch themes."), nil
	}

	list, ok := data.([]any)
	if !ok {
		lg.WithPayload(map[string]interface{}{"response": data}).Warn("unexpected response format for themes")
		return mcp.NewToolResultText("Unexpected response format received for themes: " + jsonCompact(data)), nil
	}
	if len(list) == 0 {
		lg.Info("no themes available")
		return mcp.NewToolResultText("No themes available."), nil
	}

	var b strings.Builder
	b.WriteString("Available themes:\n")
	for _, entry := range list {
		doc, _ := entry.(map[string]any)
		fmt.Fprintf(&b, "- %s\n", stringField(doc, "name", "default"))
		if id, ok := doc["id"]; ok && id != nil && id != "" {
			fmt.Fprintf(&b, "  ID: %v\n", id)
		}
		if desc := stringField(doc, "description", ""); desc != "" {
			fmt.Fprintf(&b, "  Description: %s\n", desc)
		}
		b.WriteString("\n")
	}

	lg.WithPayload(map[string]interface{}{"count": len(list)}).Info("themes fetched")
	return mcp.NewToolResultText(strings.TrimSpace(b.String())), nil
}
