package slidespeak

import (
	"fmt"
	"time"

	"github.com/slidespeak/slidespeak-mcp-go/internal/config"
)

// Options carries the resolved client settings: connection identity and
// the four time budgets that govern requests and polling.
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string

	// RequestTimeout bounds ordinary API calls.
	RequestTimeout time.Duration
	// GenerationTimeout is the total wall-clock budget for a
	// generation: the submission request plus all polling.
	GenerationTimeout time.Duration
	// PollInterval is the wait between consecutive status checks.
	PollInterval time.Duration
	// PollTimeout bounds each individual status check.
	PollTimeout time.Duration
}

// OptionsFromConfig parses the duration strings of the API section into
// resolved Options.
func OptionsFromConfig(cfg config.APIConfig) (Options, error) {
	opts := Options{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.Key,
		UserAgent: cfg.UserAgent,
	}

	for _, d := range []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"requestTimeout", cfg.RequestTimeout, &opts.RequestTimeout},
		{"generationTimeout", cfg.GenerationTimeout, &opts.GenerationTimeout},
		{"pollInterval", cfg.PollInterval, &opts.PollInterval},
		{"pollTimeout", cfg.PollTimeout, &opts.PollTimeout},
	} {
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s %q: %w", d.name, d.value, err)
		}
		*d.dst = parsed
	}

	return opts, nil
}
