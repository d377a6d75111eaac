package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleWorkflowPrompt serves the slidespeak_workflow prompt with the
// recommended end-to-end generation flow.
func (h *Handler) HandleWorkflowPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	h.newLog().Info("workflow prompt accessed")

	return mcp.NewGetPromptResult(
		"Recommended workflow for generating presentations",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(workflowPromptText)),
		},
	), nil
}

// HandleSlideLayoutsPrompt serves the slide_layouts prompt describing
// the layout constraint table.
func (h *Handler) HandleSlideLayoutsPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	h.newLog().Info("slide layouts prompt accessed")

	return mcp.NewGetPromptResult(
		"Guide to the available slide layouts",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(slideLayoutsPromptText)),
		},
	), nil
}

const workflowPromptText = `SlideSpeak Presentation Generation Workflow

1. **Check your credits:**
   - Run get_me() to see your credit balance
   - Remember: 1 credit = 1 slide

2. **Choose a template:**
   - Run get_available_templates() to see options
   - Note the template name you want to use

3. **Prepare your content:**
   - For text-based: Write or paste your content
   - For documents: Upload them first with upload_document()

4. **Generate presentation:**

   Option A - Simple generation:
   ` + "```" + `
   generate_powerpoint(
       plain_text="Your content here",
       length=10,  # Number of slides
       template="modern"
   )
   ` + "```" + `

   Option B - Slide-by-slide control:
   ` + "```" + `
   generate_slide_by_slide(
       template="modern",
       slides=[
           {
               "title": "Introduction",
               "layout": "items",
               "item_amount": 3,
               "content": "Point 1|Point 2|Point 3"
           },
           # More slides...
       ]
   )
   ` + "```" + `

5. **Monitor progress:**
   - Generation typically takes 30-90 seconds
   - If it times out, use get_task_status(task_id)

6. **Download result:**
   - The response includes a PPTX download URL
   - Share this URL with the user`

const slideLayoutsPromptText = `SlideSpeak Slide Layouts Guide

When using generate_slide_by_slide(), you can choose from these layouts:

## Flexible Layouts (1-5 items)
- **items**: Bullet points or list items
- **summary**: Key takeaways or overview
- **big-number**: Statistics or KPIs
- **pyramid**: Hierarchical information

## Fixed Range Layouts (3-5 items)
- **steps**: Process or procedure steps
- **milestone**: Timeline events
- **timeline**: Chronological sequence
- **funnel**: Sales or conversion funnel
- **cycle**: Circular process

## Fixed Count Layouts
- **comparison**: Exactly 2 items (A vs B)
- **swot**: Exactly 4 items (Strengths, Weaknesses, Opportunities, Threats)
- **pestel**: Exactly 6 items (Political, Economic, Social, Technological, Environmental, Legal)
- **quote**: Exactly 1 item (quotation)
- **thanks**: 0 items (closing slide)

## Content Format
Separate items with pipe character (|):
"Item 1|Item 2|Item 3"

Make sure item_amount matches the actual number of items!`
