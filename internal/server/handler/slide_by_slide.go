package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
	"github.com/slidespeak/slidespeak-mcp-go/internal/slidespeak"
)

const slideBySlideEndpoint = "/presentation/generate/slide-by-slide"

// HandleGenerateSlideBySlide serves the generate_slide_by_slide tool.
// Every slide is validated against the layout table before anything
// goes out on the wire; valid slides are forwarded exactly as given.
func (h *Handler) HandleGenerateSlideBySlide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	template, err := request.RequireString("template")
	if err != nil {
		return nil, err
	}

	lg := h.newLog()

	if !h.client.HasAPIKey() {
		return mcp.NewToolResultText(missingKeyMessage), nil
	}

	args := request.GetArguments()
	slides, ok := slideObjects(args["slides"])
	if !ok {
		return mcp.NewToolResultText("Parameter 'slides' must be a non-empty list of slide objects."), nil
	}
	if err := slidespeak.ValidateSlides(slides); err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Warn("slide validation failed")
		return mcp.NewToolResultText(err.Error()), nil
	}

	lg.WithPayload(map[string]interface{}{
		"slides":   len(slides),
		"template": template,
	}).Info("starting slide-by-slide generation")

	payload := slidespeak.SlideBySlideRequest{
		Template:    template,
		Slides:      slides,
		Language:    request.GetString("language", ""),
		FetchImages: request.GetBool("fetch_images", true),
	}
	if v, ok := args["include_cover"].(bool); ok {
		payload.IncludeCover = &v
	}
	if v, ok := args["include_table_of_contents"].(bool); ok {
		payload.IncludeTableOfContents = &v
	}

	outcome := h.poller.SubmitAndWait(ctx, slideBySlideEndpoint, payload)
	return mcp.NewToolResultText(formatGenerationOutcome(outcome,
		"slide-by-slide generation", "Slide-by-slide presentation generated successfully")), nil
}

// slideObjects coerces the decoded slides argument into slide maps.
func slideObjects(v any) ([]map[string]any, bool) {
	switch raw := v.(type) {
	case []map[string]any:
		return raw, true
	case []any:
		out := make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			doc, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, doc)
		}
		return out, true
	default:
		return nil, false
	}
}
