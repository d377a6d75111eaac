package slidespeak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slide(layout string, itemAmount any, content any) map[string]any {
	s := map[string]any{"layout": layout}
	if itemAmount != nil {
		s["item_amount"] = itemAmount
	}
	if content != nil {
		s["content"] = content
	}
	return s
}

func TestValidateSlidesAcceptsLayoutBounds(t *testing.T) {
	valid := []map[string]any{
		slide("items", float64(1), "one point"),
		slide("items", float64(5), "five points"),
		slide("steps", float64(3), "first, second, third"),
		slide("comparison", float64(2), "a vs b"),
		slide("swot", float64(4), "s w o t"),
		slide("pestel", float64(6), "p e s t e l"),
		slide("quote", float64(1), "said someone"),
		slide("thanks", nil, nil),
	}
	assert.NoError(t, ValidateSlides(valid))
}

func TestValidateSlidesRejectsEmptyList(t *testing.T) {
	err := ValidateSlides(nil)
	require.Error(t, err)
	assert.Equal(t, "Parameter 'slides' must be a non-empty list of slide objects.", err.Error())

	err = ValidateSlides([]map[string]any{})
	require.Error(t, err)
	assert.Equal(t, "Parameter 'slides' must be a non-empty list of slide objects.", err.Error())
}

func TestValidateSlidesRejectsMissingLayout(t *testing.T) {
	err := ValidateSlides([]map[string]any{{"content": "no layout here"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide 1: missing 'layout'")
	assert.Contains(t, err.Error(), "Valid layouts:")
}

func TestValidateSlidesRejectsUnknownLayout(t *testing.T) {
	err := ValidateSlides([]map[string]any{slide("mosaic", nil, "x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide 1: unknown layout 'mosaic'")
	assert.Contains(t, err.Error(), "Valid layouts:")
}

func TestValidateSlidesEnforcesItemAmountRange(t *testing.T) {
	err := ValidateSlides([]map[string]any{slide("comparison", float64(3), "a b c")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide 1: layout 'comparison' requires exactly 2 item(s), got 3.")

	err = ValidateSlides([]map[string]any{slide("steps", float64(6), "too many")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide 1: layout 'steps' requires 3-5 items, got 6.")

	err = ValidateSlides([]map[string]any{
		slide("items", float64(2), "fine"),
		slide("items", float64(0), "none"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide 2:")
}

func TestValidateSlidesRejectsFractionalItemAmount(t *testing.T) {
	err := ValidateSlides([]map[string]any{slide("items", 2.5, "halves")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide 1: 'item_amount' must be a whole number.")
}

func TestValidateSlidesRequiresContentForItemLayouts(t *testing.T) {
	cases := map[string]any{
		"absent":       nil,
		"empty string": "",
		"empty list":   []any{},
		"empty object": map[string]any{},
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			s := map[string]any{"layout": "items"}
			if content != nil {
				s["content"] = content
			}
			err := ValidateSlides([]map[string]any{s})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Slide 1: layout 'items' requires non-empty content.")
		})
	}
}

func TestValidateSlidesAllowsEmptyThanksSlide(t *testing.T) {
	assert.NoError(t, ValidateSlides([]map[string]any{slide("thanks", nil, "")}))
}

func TestValidateSlidesAcceptsIntItemAmount(t *testing.T) {
	assert.NoError(t, ValidateSlides([]map[string]any{slide("swot", 4, "quadrants")}))
}

func TestLayoutConstraintLookup(t *testing.T) {
	r, ok := LayoutConstraint("pestel")
	require.True(t, ok)
	assert.Equal(t, LayoutRange{Min: 6, Max: 6}, r)

	_, ok = LayoutConstraint("collage")
	assert.False(t, ok)
}

func TestDescribeLayoutsListsEveryLayout(t *testing.T) {
	text := DescribeLayouts()
	for _, name := range LayoutNames() {
		assert.Contains(t, text, "- "+name+":")
	}
	assert.Contains(t, text, "- comparison: exactly 2 item(s)")
	assert.Contains(t, text, "- items: 1-5 items")
}
