// Package keywordpack loads the relevance keywords and the summary prompt
// from the embedded keywords.yaml or an operator supplied file of the same shape
package keywordpack

import (
	_ "embed"
	"os"
	"strings"

	"chefbot/internal/core/relevance"
	perr "chefbot/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var embedded []byte

type rawPack struct {
	Version  int      `yaml:"version"`
	Keywords []string `yaml:"keywords"`
	Prompt   string   `yaml:"prompt"`
}

// Pack is the immutable keyword set and prompt shared by every request
type Pack struct {
	Version  int
	Source   string
	Keywords relevance.KeywordSet
	Prompt   string
}

// Load returns the embedded default pack
func Load() (*Pack, error) { return parse(embedded, "embedded") }

// LoadFile reads a pack from path; an empty path means the embedded default
func LoadFile(path string) (*Pack, error) {
	if strings.TrimSpace(path) == "" {
		return Load()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "keywordpack: read %s", path)
	}
	return parse(b, path)
}

// MustLoadFile is LoadFile for bootstrap code paths; it panics on error
func MustLoadFile(path string) *Pack {
	p, err := LoadFile(path)
	if err != nil {
		panic(err)
	}
	return p
}

func parse(b []byte, source string) (*Pack, error) {
	var raw rawPack
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "keywordpack: decode %s", source)
	}
	kw := relevance.NewKeywordSet(raw.Keywords...)
	if kw.Len() == 0 {
		return nil, perr.InvalidArgf("keywordpack: %s has no keywords", source)
	}
	if strings.TrimSpace(raw.Prompt) == "" {
		return nil, perr.InvalidArgf("keywordpack: %s has no prompt", source)
	}
	return &Pack{
		Version:  raw.Version,
		Source:   source,
		Keywords: kw,
		Prompt:   raw.Prompt,
	}, nil
}
