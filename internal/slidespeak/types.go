package slidespeak

// GeneratePresentationRequest is the body of POST /presentation/generate.
// Optional fields are omitted from the payload unless the caller set
// them, so the wire shape mirrors the tool call.
type GeneratePresentationRequest struct {
	PlainText              string   `json:"plain_text"`
	Length                 int      `json:"length"`
	Template               string   `json:"template"`
	Language               string   `json:"language,omitempty"`
	FetchImages            *bool    `json:"fetch_images,omitempty"`
	Tone                   string   `json:"tone,omitempty"`
	Verbosity              string   `json:"verbosity,omitempty"`
	CustomUserInstructions string   `json:"custom_user_instructions,omitempty"`
	DocumentUUIDs          []string `json:"document_uuids,omitempty"`
}

// SlideBySlideRequest is the body of POST /presentation/generate/slide-by-slide.
// Slides pass through exactly as the caller supplied them; fetch_images
// is the only field with an explicit default and is always sent.
type SlideBySlideRequest struct {
	Template               string           `json:"template"`
	Slides                 []map[string]any `json:"slides"`
	Language               string           `json:"language,omitempty"`
	FetchImages            bool             `json:"fetch_images"`
	IncludeCover           *bool            `json:"include_cover,omitempty"`
	IncludeTableOfContents *bool            `json:"include_table_of_contents,omitempty"`
}
