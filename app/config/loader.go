package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bbsimage/appfree/app/feed"
)

// Loader produces the pipeline rule set, starting from the defaults and
// applying an optional YAML override file on top.
type Loader struct {
	path string
}

// NewLoader creates a new rules loader. An empty path means built-in
// defaults only.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Run() (*feed.Rules, error) {
	rules := feed.DefaultRules()

	if l.path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	// Unmarshal on top of the defaults, so the file only needs to list
	// the keys it changes. List-valued keys replace the whole list.
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if err := l.validate(rules); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", l.path, err)
	}

	slog.Info("Loaded rules overrides", "path", l.path)

	return rules, nil
}

func (l *Loader) validate(rules *feed.Rules) error {
	if rules.StoreLinkMarker == "" {
		return fmt.Errorf("store link marker is required")
	}
	if _, err := regexp.Compile(rules.StoreLinkPattern); err != nil {
		return fmt.Errorf("store link pattern does not compile: %w", err)
	}

	limits := map[string]int{
		"promo_link_limit":     rules.PromoLinkLimit,
		"keyword_limit":        rules.KeywordLimit,
		"min_plain_text_len":   rules.MinPlainTextLen,
		"promo_plain_text_len": rules.PromoPlainTextLen,
		"min_description_len":  rules.MinDescriptionLen,
		"max_description_len":  rules.MaxDescriptionLen,
	}
	for name, value := range limits {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if rules.MinDescriptionLen > rules.MaxDescriptionLen {
		return fmt.Errorf("min_description_len must not exceed max_description_len")
	}
	if rules.MinSentenceLen > rules.MaxSentenceLen {
		return fmt.Errorf("min_sentence_len must not exceed max_sentence_len")
	}

	return nil
}
