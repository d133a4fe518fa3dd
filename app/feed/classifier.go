package feed

import (
	"regexp"
	"strings"
)

var titleDatePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// Signals are the per-entry measurements the ad rules are evaluated
// against. Recomputed for every entry, never cached.
type Signals struct {
	HasStoreLink   bool
	DigestTitle    bool
	KeywordCount   int
	PromoLinkCount int
	PlainTextLen   int
}

// Classifier decides whether an entry is channel promotion rather than a
// genuine app listing. A genuine listing always cites a store link and
// carries enough non-promotional prose; pure promotion is short and
// link-dense.
type Classifier struct {
	rules         *Rules
	normalizer    *Normalizer
	promoPatterns []*regexp.Regexp
}

func NewClassifier(rules *Rules, normalizer *Normalizer) *Classifier {
	patterns := make([]*regexp.Regexp, 0, len(rules.PromoLabels))
	for _, label := range rules.PromoLabels {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(label)+`[：:].*?https?://`))
	}
	return &Classifier{
		rules:         rules,
		normalizer:    normalizer,
		promoPatterns: patterns,
	}
}

// ComputeSignals measures the entry against the raw, unstripped
// description.
func (c *Classifier) ComputeSignals(entry Entry) Signals {
	s := Signals{
		HasStoreLink: strings.Contains(entry.Description, c.rules.StoreLinkMarker),
		DigestTitle:  c.isDigestTitle(entry.Title),
	}
	for _, keyword := range c.rules.AdKeywords {
		if strings.Contains(entry.Description, keyword) {
			s.KeywordCount++
		}
	}
	for _, pattern := range c.promoPatterns {
		if pattern.MatchString(entry.Description) {
			s.PromoLinkCount++
		}
	}
	s.PlainTextLen = len(c.normalizer.PlainText(entry.Description))
	return s
}

// Run reports whether the entry is an ad. Rules short-circuit in order;
// the first match wins.
func (c *Classifier) Run(entry Entry) bool {
	s := c.ComputeSignals(entry)

	switch {
	case !s.HasStoreLink:
		// No purchasable target, cannot be a real listing.
		return true
	case s.DigestTitle:
		return true
	case s.PromoLinkCount >= c.rules.PromoLinkLimit:
		return true
	case s.KeywordCount >= c.rules.KeywordLimit:
		return true
	case s.PlainTextLen < c.rules.MinPlainTextLen:
		return true
	case s.PlainTextLen < c.rules.PromoPlainTextLen && s.PromoLinkCount >= 1:
		return true
	}

	return false
}

// isDigestTitle matches daily digest headers such as
// "🖼 App Store 限免应用 01/10/2026": a digest phrase, an icon glyph and a
// calendar date together.
func (c *Classifier) isDigestTitle(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	return containsAny(title, c.rules.DigestPhrases) &&
		containsAny(title, c.rules.DigestGlyphs) &&
		titleDatePattern.MatchString(title)
}
