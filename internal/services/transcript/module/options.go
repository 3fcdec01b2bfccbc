package module

import (
	"time"

	"chefbot/internal/platform/config"
)

// Options holds configuration for the transcript module
type Options struct {
	PrimaryLang   string
	SecondaryLang string

	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// FromConfig reads CORE_CHEF_* languages and SERVICE_YOUTUBE_* client settings
func FromConfig(cfg config.Conf) Options {
	chef := cfg.Prefix("CORE_CHEF_")
	yt := cfg.Prefix("SERVICE_YOUTUBE_")
	return Options{
		PrimaryLang:   chef.MayString("PRIMARY_LANG", "en"),
		SecondaryLang: chef.MayString("SECONDARY_LANG", "id"),
		BaseURL:       yt.MayString("BASE_URL", ""),
		UserAgent:     yt.MayString("USER_AGENT", ""),
		Timeout:       yt.MayDuration("TIMEOUT", 20*time.Second),
	}
}
