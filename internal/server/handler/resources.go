package handler

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleHealthResource serves health://status: a JSON snapshot of the
// server identity, key presence and the API endpoints it fronts.
func (h *Handler) HandleHealthResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	h.newLog().Info("health check requested")

	status := map[string]any{
		"status":         "healthy",
		"service":        h.cfg.App.Name,
		"version":        h.cfg.App.Version,
		"api_configured": h.client.HasAPIKey(),
		"api_base":       h.cfg.API.BaseURL,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"endpoints": map[string]string{
			"templates":      templatesEndpoint,
			"themes":         themesEndpoint,
			"generate":       generateEndpoint,
			"slide_by_slide": slideBySlideEndpoint,
			"task_status":    "/task_status/{task_id}",
			"me":             meEndpoint,
			"upload":         "/document/upload",
		},
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     jsonPretty(status),
		},
	}, nil
}

// HandleTemplatesResource serves templates://list, a static pointer to
// the template workflow.
func (h *Handler) HandleTemplatesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	h.newLog().Info("templates resource accessed")

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     templatesResourceText,
		},
	}, nil
}

// HandleAPIDocsResource serves api://documentation, the static usage
// guide for the tool surface.
func (h *Handler) HandleAPIDocsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	h.newLog().Info("API documentation resource accessed")

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     apiDocumentationText,
		},
	}, nil
}

const templatesResourceText = `SlideSpeak Templates Resource

Use get_available_templates() to fetch the current list of templates.
Each template includes:
- Name: Template identifier
- Cover image URL: Preview of the cover slide
- Content image URL: Preview of content slides

Templates are regularly updated, so always fetch the latest list before generating.`

const apiDocumentationText = `SlideSpeak MCP API Documentation

## Authentication
Set SLIDESPEAK_API_KEY environment variable with your API key.

## Available Tools

1. get_available_templates()
   - Fetches list of presentation templates
   - No parameters required

2. get_themes()
   - Fetches custom brand themes
   - No parameters required

3. get_me()
   - Returns user info and credit balance
   - Credits are consumed at 1 per slide

4. check_if_authenticated()
   - Verifies that the configured API key is accepted

5. generate_powerpoint(plain_text, length, template, document_uuids?)
   - Generates presentation from text
   - Returns download URL for PPTX file

6. generate_slide_by_slide(template, slides, language?, fetch_images?)
   - Precise control over each slide
   - Define layout and content per slide

7. get_task_status(task_id)
   - Check status of generation tasks
   - Useful for long-running operations

8. upload_document(file_path)
   - Upload documents to incorporate
   - Returns document UUID for use in generation

## Rate Limits
- Standard API rate limits apply
- Generation tasks may take 30-90 seconds

## Credits
- Each slide costs 1 credit
- Check balance with get_me()`
