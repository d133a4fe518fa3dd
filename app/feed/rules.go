package feed

import "strings"

// Rules holds every tunable the pipeline decides by: keyword sets, promo
// patterns and length thresholds. The values are empirical, calibrated
// against the o0apps channel feed, and can be overridden from a YAML file.
// They are data, not protocol.
type Rules struct {
	// AdKeywords mark channel/mirror promotion text ("老鹰" and "红薯" are
	// the channel's pet names for its VPN and XiaoHongShu mirrors).
	AdKeywords []string `yaml:"ad_keywords"`
	// PromoLabels are the labels that prefix promotional links, matched as
	// "<label>: <url>".
	PromoLabels []string `yaml:"promo_labels"`

	StoreLinkMarker  string `yaml:"store_link_marker"`
	StoreLinkPattern string `yaml:"store_link_pattern"`
	StoreName        string `yaml:"store_name"`

	FullAppMarker string `yaml:"full_app_marker"`
	InAppMarker   string `yaml:"in_app_marker"`

	// DigestPhrases plus a glyph plus a DD/MM/YYYY token identify a daily
	// digest header rather than a single app.
	DigestPhrases []string `yaml:"digest_phrases"`
	DigestGlyphs  []string `yaml:"digest_glyphs"`
	GenericTitles []string `yaml:"generic_titles"`

	ImageHints []string `yaml:"image_hints"`

	// DescriptionStopPhrases disqualify a normalized line from serving as
	// the item description.
	DescriptionStopPhrases []string `yaml:"description_stop_phrases"`

	// Classifier thresholds, evaluated in rule order.
	PromoLinkLimit    int `yaml:"promo_link_limit"`
	KeywordLimit      int `yaml:"keyword_limit"`
	MinPlainTextLen   int `yaml:"min_plain_text_len"`
	PromoPlainTextLen int `yaml:"promo_plain_text_len"`

	// Extractor windows, byte lengths of UTF-8 text.
	MinDescriptionLen int `yaml:"min_description_len"`
	MaxDescriptionLen int `yaml:"max_description_len"`
	MinSentenceLen    int `yaml:"min_sentence_len"`
	MaxSentenceLen    int `yaml:"max_sentence_len"`
	QuoteFallbackLen  int `yaml:"quote_fallback_len"`
	QuoteTruncateLen  int `yaml:"quote_truncate_len"`
	DigestTitleLen    int `yaml:"digest_title_len"`
	MinTitleLen       int `yaml:"min_title_len"`
	MinAcceptTitleLen int `yaml:"min_accept_title_len"`
	HashtagLineLen    int `yaml:"hashtag_line_len"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() *Rules {
	return &Rules{
		AdKeywords:  []string{"群组", "频道", "老鹰", "推特", "红薯", "Bluesky", "@o0apps", "推送频道"},
		PromoLabels: []string{"群组", "频道", "老鹰", "推特", "红薯", "Bluesky"},

		StoreLinkMarker:  "apps.apple.com",
		StoreLinkPattern: `https://apps\.apple\.com/[^\s)"']+`,
		StoreName:        "App Store",

		FullAppMarker: "#本体限免",
		InAppMarker:   "#内购限免",

		DigestPhrases: []string{"限免应用", "限免"},
		DigestGlyphs:  []string{"🖼", "📱"},
		GenericTitles: []string{"限免应用", "App Store 限免应用", "限时免费"},

		ImageHints: []string{"cdn", "telesco"},

		DescriptionStopPhrases: []string{
			"群组", "频道", "@", "推送频道", "还可以兑换",
			"老鹰:", "推特:", "红薯:", "Bluesky:",
		},

		PromoLinkLimit:    3,
		KeywordLimit:      3,
		MinPlainTextLen:   15,
		PromoPlainTextLen: 20,

		MinDescriptionLen: 10,
		MaxDescriptionLen: 100,
		MinSentenceLen:    20,
		MaxSentenceLen:    150,
		QuoteFallbackLen:  30,
		QuoteTruncateLen:  100,
		DigestTitleLen:    30,
		MinTitleLen:       2,
		MinAcceptTitleLen: 3,
		HashtagLineLen:    20,
	}
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
