package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
)

// HandleGetTaskStatus serves the get_task_status tool for checking on
// long-running or timed-out generations.
func (h *Handler) HandleGetTaskStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(taskID) == "" {
		return mcp.NewToolResultError("task_id must be a non-empty string"), nil
	}

	lg := h.newLog()
	lg.WithPayload(map[string]interface{}{"task_id": taskID}).Info("checking task status")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	status, err := h.client.TaskStatus(ctx, taskID)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("failed to fetch task status")
		return mcp.NewToolResultText(fmt.Sprintf("Failed to fetch status for task %s.", taskID)), nil
	}

	return mcp.NewToolResultText(jsonPretty(status)), nil
}
