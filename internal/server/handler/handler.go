package handler

import (
	"encoding/json"
	"fmt"
	"unicode"

	"github.com/google/uuid"

	"github.com/slidespeak/slidespeak-mcp-go/internal/config"
	"github.com/slidespeak/slidespeak-mcp-go/internal/slidespeak"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/logger"
)

const serviceName = "slidespeak_mcp"

// missingKeyMessage is returned by every tool when no API key is
// configured. Nothing goes out on the wire in that case.
const missingKeyMessage = "API Key is missing. Cannot process any requests."

// Handler carries the shared state behind every tool, resource and
// prompt: the loaded configuration, the API gateway and the job poller.
type Handler struct {
	cfg    *config.AppConfig
	client *slidespeak.Client
	poller *slidespeak.Poller
}

// New creates a Handler around an API client and poller.
func New(cfg *config.AppConfig, client *slidespeak.Client, poller *slidespeak.Poller) *Handler {
	return &Handler{cfg: cfg, client: client, poller: poller}
}

// newLog creates a logger with a fresh trace id for one invocation.
func (h *Handler) newLog() *logger.Logger {
	return logger.New(serviceName, uuid.NewString())
}

// formatGenerationOutcome renders a poller outcome into the single
// string handed back to the calling agent. opName names the operation
// mid-sentence ("PowerPoint generation"); successBanner opens the
// success message. Every terminal state that has one embeds the task id
// so the agent can follow up with get_task_status.
func formatGenerationOutcome(outcome slidespeak.Outcome, opName, successBanner string) string {
	switch outcome.State {
	case slidespeak.OutcomeSucceeded:
		return fmt.Sprintf("%s (Task ID: %s).\n\n%s\n\nMake sure to return the PPTX URL to the user if available.",
			successBanner, outcome.TaskID, renderResult(outcome.Result))

	case slidespeak.OutcomeFailed:
		return fmt.Sprintf("%s failed for task %s.\nReason: %s", firstUpper(opName), outcome.TaskID, outcome.Reason)

	case slidespeak.OutcomeTimedOut:
		return fmt.Sprintf("Timeout while waiting for %s (Task ID: %s).\nThe task might still be running. You can check status using get_task_status.",
			opName, outcome.TaskID)

	default:
		if outcome.Raw != nil {
			return fmt.Sprintf("Failed to initiate %s. API response did not contain a task ID. Response: %s",
				opName, jsonCompact(outcome.Raw))
		}
		return fmt.Sprintf("Failed to initiate %s due to an API error. Check server logs.", opName)
	}
}

// renderResult formats a success payload: strings (usually the bare
// PPTX URL) pass through, anything else is pretty-printed JSON.
func renderResult(result any) string {
	if s, ok := result.(string); ok {
		return s
	}
	return jsonPretty(result)
}

func jsonPretty(v any) string {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}

func jsonCompact(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}

func firstUpper(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// stringField reads a string field from a decoded JSON object, falling
// back when the field is missing, empty or not a string. Safe on nil
// maps.
func stringField(doc map[string]any, key, fallback string) string {
	if s, ok := doc[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// stringSliceArg reads an optional list argument, accepting both the
// []any shape JSON decoding produces and a plain []string.
func stringSliceArg(args map[string]any, key string) ([]string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, false
	}
	switch raw := v.(type) {
	case []string:
		return raw, true
	case []any:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
