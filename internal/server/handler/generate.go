package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/slidespeak"
)

const generateEndpoint = "/presentation/generate"

// HandleGeneratePowerPoint serves the generate_powerpoint tool:
// assemble the generation document from the arguments, submit it and
// wait for the task to finish.
func (h *Handler) HandleGeneratePowerPoint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plainText, err := request.RequireString("plain_text")
	if err != nil {
		return nil, err
	}
	length, err := request.RequireInt("length")
	if err != nil {
		return nil, err
	}
	template, err := request.RequireString("template")
	if err != nil {
		return nil, err
	}

	lg := h.newLog()
	lg.WithPayload(map[string]interface{}{
		"text_chars": len(plainText),
		"length":     length,
		"template":   template,
	}).Info("starting PowerPoint generation")

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	payload := slidespeak.GeneratePresentationRequest{
		PlainText:              plainText,
		Length:                 length,
		Template:               template,
		Language:               request.GetString("language", ""),
		Tone:                   request.GetString("tone", ""),
		Verbosity:              request.GetString("verbosity", ""),
		CustomUserInstructions: request.GetString("custom_user_instructions", ""),
	}

	args := request.GetArguments()
	if v, ok := args["fetch_images"].(bool); ok {
		payload.FetchImages = &v
	}
	if uuids, ok := stringSliceArg(args, "document_uuids"); ok && len(uuids) > 0 {
		payload.DocumentUUIDs = uuids
		lg.WithPayload(map[string]interface{}{"documents": len(uuids)}).Info("including uploaded documents")
	}

	outcome := h.poller.SubmitAndWait(ctx, generateEndpoint, payload)
	return mcp.NewToolResultText(formatGenerationOutcome(outcome,
		"PowerPoint generation", "Presentation generated successfully")), nil
}
