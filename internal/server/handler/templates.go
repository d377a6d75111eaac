package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
)

const templatesEndpoint = "/presentation/templates"

// HandleGetTemplates serves the get_available_templates tool: one block
// per template with its cover and content preview URLs.
func (h *Handler) HandleGetTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lg := h.newLog()
	lg.Info("fetching available templates")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	data, err := h.client.Get(ctx, templatesEndpoint)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("failed to fetch templates")
		return mcp.NewToolResultText("Unable to fetch templates due to an API error. Check server logs."), nil
	}

	list, ok := data.([]any)
	if !ok {
		lg.WithPayload(map[string]interface{}{"response": data}).Warn("unexpected response format for templates")
		return mcp.NewToolResultText("Unexpected response format received for templates: " + jsonCompact(data)), nil
	}
	if len(list) == 0 {
		lg.Info("no templates available")
		return mcp.NewToolResultText("No templates available."), nil
	}

	var b strings.Builder
	b.WriteString("Available templates:\n")
	for _, entry := range list {
		doc, _ := entry.(map[string]any)
		images, _ := doc["images"].(map[string]any)
		fmt.Fprintf(&b, "- %s\n  Cover: %s\n  Content: %s\n\n",
			stringField(doc, "name", "default"),
			stringField(images, "cover", "No cover image URL"),
			stringField(images, "content", "No content image URL"))
	}

	lg.WithPayload(map[string]interface{}{"count": len(list)}).Info("templates fetched")
	return mcp.NewToolResultText(strings.TrimSpace(b.String())), nil
}
