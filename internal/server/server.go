package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/slidespeak/slidespeak-mcp-go/internal/config"
	"github.com/slidespeak/slidespeak-mcp-go/internal/server/handler"
	"github.com/slidespeak/slidespeak-mcp-go/internal/slidespeak"
)

// New assembles the MCP server: every tool, resource and prompt wired
// to one shared handler. Transport selection happens in the caller.
func New(cfg *config.AppConfig, h *handler.Handler) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		cfg.App.Name,
		cfg.App.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(true, true),
		mcpserver.WithPromptCapabilities(true),
	)

	registerTools(s, h)
	registerResources(s, h)
	registerPrompts(s, h)

	return s
}

func registerTools(s *mcpserver.MCPServer, h *handler.Handler) {
	s.AddTool(mcp.NewTool(
		"get_available_templates",
		mcp.WithDescription("Get all available presentation templates from SlideSpeak. Returns a formatted list of templates with their cover and content image URLs. This is typically the first command to run to see what templates are available."),
	), h.HandleGetTemplates)

	s.AddTool(mcp.NewTool(
		"get_themes",
		mcp.WithDescription("Get the custom brand themes available to the current account. A theme can be used in place of a stock template name when generating."),
	), h.HandleGetThemes)

	s.AddTool(mcp.NewTool(
		"get_me",
		mcp.WithDescription("Get details about the current API key (user_name and remaining credits). Note: generating slides costs 1 credit per slide."),
	), h.HandleGetMe)

	s.AddTool(mcp.NewTool(
		"check_if_authenticated",
		mcp.WithDescription("Check whether the configured SlideSpeak API key is accepted by the API."),
	), h.HandleCheckAuthenticated)

	s.AddTool(mcp.NewTool(
		"generate_powerpoint",
		mcp.WithDescription("Generate a PowerPoint presentation based on text, length, and template. This initiates presentation generation and waits for completion, returning the download URL for the PPTX file."),
		mcp.WithString("plain_text",
			mcp.Required(),
			mcp.Description("The text content to generate presentation from"),
		),
		mcp.WithNumber("length",
			mcp.Required(),
			mcp.Description("Number of slides to generate (costs 1 credit per slide)"),
		),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Template name to use (get available templates first)"),
		),
		mcp.WithString("language",
			mcp.Description("Language code like 'ENGLISH' or 'ORIGINAL'"),
		),
		mcp.WithBoolean("fetch_images",
			mcp.Description("Whether to fetch stock images for the slides"),
		),
		mcp.WithString("tone",
			mcp.Description("Tone of voice for the generated text"),
		),
		mcp.WithString("verbosity",
			mcp.Description("How text-heavy the slides should be"),
		),
		mcp.WithString("custom_user_instructions",
			mcp.Description("Additional free-form instructions for the generator"),
		),
		mcp.WithArray("document_uuids",
			mcp.Description("UUIDs of previously uploaded documents to incorporate"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.HandleGeneratePowerPoint)

	s.AddTool(mcp.NewTool(
		"generate_slide_by_slide",
		mcp.WithDescription("Generate a PowerPoint presentation using slide-by-slide input for precise control over each slide's layout and content. Each slide object carries title, layout, item_amount and content. Available layouts:\n"+slidespeak.DescribeLayouts()),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Template name or custom template ID"),
		),
		mcp.WithArray("slides",
			mcp.Required(),
			mcp.Description("List of slide definitions with title, layout, item_amount, and content"),
			mcp.Items(map[string]any{"type": "object"}),
		),
		mcp.WithString("language",
			mcp.Description("Language code like 'ENGLISH' or 'ORIGINAL'"),
		),
		mcp.WithBoolean("fetch_images",
			mcp.Description("Whether to fetch stock images for the slides (default: true)"),
		),
		mcp.WithBoolean("include_cover",
			mcp.Description("Whether to include a cover slide"),
		),
		mcp.WithBoolean("include_table_of_contents",
			mcp.Description("Whether to include a table of contents slide"),
		),
	), h.HandleGenerateSlideBySlide)

	s.AddTool(mcp.NewTool(
		"get_task_status",
		mcp.WithDescription("Get the current task status and result by task_id. Use this to check on long-running tasks or tasks that timed out."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The task ID returned from generation endpoints"),
		),
	), h.HandleGetTaskStatus)

	s.AddTool(mcp.NewTool(
		"upload_document",
		mcp.WithDescription("Upload a document file and return the task_id and document_uuid for use in generation. Supported file types: .pptx, .ppt, .docx, .doc, .xlsx, .pdf"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the document file to upload"),
		),
	), h.HandleUploadDocument)
}

func registerResources(s *mcpserver.MCPServer, h *handler.Handler) {
	s.AddResource(mcp.NewResource(
		"health://status",
		"Health Status",
		mcp.WithResourceDescription("Server health snapshot for monitoring"),
		mcp.WithMIMEType("application/json"),
	), h.HandleHealthResource)

	s.AddResource(mcp.NewResource(
		"templates://list",
		"Templates Guide",
		mcp.WithResourceDescription("How to work with presentation templates"),
		mcp.WithMIMEType("text/plain"),
	), h.HandleTemplatesResource)

	s.AddResource(mcp.NewResource(
		"api://documentation",
		"API Documentation",
		mcp.WithResourceDescription("Usage guide for the SlideSpeak tool surface"),
		mcp.WithMIMEType("text/plain"),
	), h.HandleAPIDocsResource)
}

func registerPrompts(s *mcpserver.MCPServer, h *handler.Handler) {
	s.AddPrompt(mcp.NewPrompt(
		"slidespeak_workflow",
		mcp.WithPromptDescription("Recommended workflow for generating presentations"),
	), h.HandleWorkflowPrompt)

	s.AddPrompt(mcp.NewPrompt(
		"slide_layouts",
		mcp.WithPromptDescription("Guide for available slide layouts"),
	), h.HandleSlideLayoutsPrompt)
}
