package slidespeak

import (
	"fmt"
	"strings"
)

// LayoutRange bounds the item count a slide layout accepts.
type LayoutRange struct {
	Min int
	Max int
}

// slideLayouts maps each supported layout to its item constraints.
// Layouts with Min 0 (closing slides) carry no content at all.
var slideLayouts = map[string]LayoutRange{
	"items":      {1, 5},
	"summary":    {1, 5},
	"big-number": {1, 5},
	"pyramid":    {1, 5},
	"steps":      {3, 5},
	"milestone":  {3, 5},
	"timeline":   {3, 5},
	"funnel":     {3, 5},
	"cycle":      {3, 5},
	"comparison": {2, 2},
	"swot":       {4, 4},
	"pestel":     {6, 6},
	"quote":      {1, 1},
	"thanks":     {0, 0},
}

// layoutOrder keeps error messages and documentation deterministic.
var layoutOrder = []string{
	"items", "steps", "summary", "comparison", "big-number", "milestone",
	"pestel", "swot", "pyramid", "timeline", "funnel", "quote", "cycle",
	"thanks",
}

// LayoutNames returns the supported layout names in a stable order.
func LayoutNames() []string {
	names := make([]string, len(layoutOrder))
	copy(names, layoutOrder)
	return names
}

// LayoutConstraint looks up the item range for a layout name.
func LayoutConstraint(layout string) (LayoutRange, bool) {
	r, ok := slideLayouts[layout]
	return r, ok
}

// DescribeLayouts renders the constraint table for tool documentation.
func DescribeLayouts() string {
	var b strings.Builder
	for _, name := range layoutOrder {
		r := slideLayouts[name]
		switch {
		case r.Min == r.Max:
			fmt.Fprintf(&b, "- %s: exactly %d item(s)\n", name, r.Min)
		default:
			fmt.Fprintf(&b, "- %s: %d-%d items\n", name, r.Min, r.Max)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ValidateSlides checks each slide object against the layout table:
// the layout must be known, item_amount (when present) must lie in the
// layout's range, and layouts that require at least one item must carry
// non-empty content. Zero-item layouts skip content validation.
// The returned error text is written for the calling agent.
func ValidateSlides(slides []map[string]any) error {
	if len(slides) == 0 {
		return fmt.Errorf("Parameter 'slides' must be a non-empty list of slide objects.")
	}

	for i, slide := range slides {
		layout, _ := slide["layout"].(string)
		if layout == "" {
			return fmt.Errorf("Slide %d: missing 'layout'. Valid layouts: %s.", i+1, strings.Join(layoutOrder, ", "))
		}

		constraint, ok := slideLayouts[layout]
		if !ok {
			return fmt.Errorf("Slide %d: unknown layout '%s'. Valid layouts: %s.", i+1, layout, strings.Join(layoutOrder, ", "))
		}

		if amount, present, valid := itemAmount(slide); present {
			if !valid {
				return fmt.Errorf("Slide %d: 'item_amount' must be a whole number.", i+1)
			}
			if amount < constraint.Min || amount > constraint.Max {
				if constraint.Min == constraint.Max {
					return fmt.Errorf("Slide %d: layout '%s' requires exactly %d item(s), got %d.", i+1, layout, constraint.Min, amount)
				}
				return fmt.Errorf("Slide %d: layout '%s' requires %d-%d items, got %d.", i+1, layout, constraint.Min, constraint.Max, amount)
			}
		}

		if constraint.Min > 0 && emptyContent(slide["content"]) {
			return fmt.Errorf("Slide %d: layout '%s' requires non-empty content.", i+1, layout)
		}
	}

	return nil
}

// itemAmount extracts the optional item_amount field. JSON numbers
// decode as float64; only integral values are accepted.
func itemAmount(slide map[string]any) (amount int, present, valid bool) {
	v, ok := slide["item_amount"]
	if !ok || v == nil {
		return 0, false, false
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, true, false
		}
		return int(n), true, true
	case int:
		return n, true, true
	default:
		return 0, true, false
	}
}

func emptyContent(v any) bool {
	switch c := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(c) == ""
	case []any:
		return len(c) == 0
	case map[string]any:
		return len(c) == 0
	default:
		return false
	}
}
