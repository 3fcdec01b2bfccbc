package module

import (
	"chefbot/internal/adapters/gemini"
	"chefbot/internal/platform/config"
)

// Options holds configuration for the summarize module
type Options struct {
	Model  string
	RPS    float64
	Burst  int
	Prompt string
}

// FromConfig reads SERVICE_GEMINI_* settings; the API key is read separately
func FromConfig(cfg config.Conf) Options {
	g := cfg.Prefix("SERVICE_GEMINI_")
	return Options{
		Model: g.MayString("MODEL", gemini.DefaultModel),
		RPS:   g.MayFloat64("RPS", 1),
		Burst: g.MayInt("BURST", 2),
	}
}

// apiKey returns SERVICE_GEMINI_API_KEY or GOOGLE_API_KEY and panics when neither is set
func apiKey(cfg config.Conf) string {
	return cfg.Prefix("SERVICE_GEMINI_").MustStringOr("API_KEY", "GOOGLE_API_KEY")
}
