package module

import (
	"chefbot/internal/core/keywordpack"
	"chefbot/internal/platform/config"
)

// Options holds configuration for the chef module
type Options struct {
	KeywordsFile string
	// Pack, when set, wins over KeywordsFile
	Pack *keywordpack.Pack
}

// FromConfig reads CORE_CHEF_* settings
func FromConfig(cfg config.Conf) Options {
	return Options{
		KeywordsFile: cfg.Prefix("CORE_CHEF_").MayString("KEYWORDS_FILE", ""),
	}
}
