package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern           = regexp.MustCompile(`https?://\S+`)
	handlePattern        = regexp.MustCompile(`@\w+`)
	hashtagPattern       = regexp.MustCompile(`#\w+`)
	glyphPattern         = regexp.MustCompile(`[🖼📱📲]`)
	bracketPattern       = regexp.MustCompile(`\s*\[[^\]]*\]\s*`)
	trailingParenPattern = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	whitespacePattern    = regexp.MustCompile(`\s+`)

	downloadLeadPattern = regexp.MustCompile(`(?i)Download\s+[^.]*?\s+on\s+the\s+App\s+Store\.?\s*`)
	downloadAnyPattern  = regexp.MustCompile(`(?i)Download\s+.*?App\s+Store`)
	seeSuffixPattern    = regexp.MustCompile(`(?i)See\s+(screenshots|more).*`)
	redeemPattern       = regexp.MustCompile(`(?i)/redeem/.*?code=([A-Z0-9-]+)`)
)

// Extractor turns one non-ad entry into an Item. Every field has its own
// chain of fallback sources, tried from most to least reliable; only the
// title and the store link are mandatory.
type Extractor struct {
	rules       *Rules
	normalizer  *Normalizer
	linkPattern *regexp.Regexp
	promoSuffix *regexp.Regexp
}

func NewExtractor(rules *Rules, normalizer *Normalizer) *Extractor {
	labels := make([]string, 0, len(rules.PromoLabels))
	for _, label := range rules.PromoLabels {
		labels = append(labels, regexp.QuoteMeta(label))
	}
	return &Extractor{
		rules:       rules,
		normalizer:  normalizer,
		linkPattern: regexp.MustCompile(rules.StoreLinkPattern),
		promoSuffix: regexp.MustCompile(`(` + strings.Join(labels, "|") + `)[：:].*`),
	}
}

// Run extracts an Item from the entry. The second return value is false
// when mandatory data is missing; that is a silent drop, not an error.
func (e *Extractor) Run(entry Entry) (*Item, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(entry.Description))
	if err != nil {
		return nil, false
	}
	lines := e.normalizer.Run(entry.Description)

	title, ok := e.extractTitle(entry.Title, lines)
	if !ok {
		return nil, false
	}

	appLink, ok := e.extractAppLink(entry.Description)
	if !ok {
		return nil, false
	}

	item := &Item{
		Title:       title,
		AppLink:     appLink,
		Tag:         e.extractTag(entry.Description),
		ImageURL:    e.extractImage(doc),
		Description: e.extractDescription(doc, lines, title, entry.Title),
		RedeemCode:  e.extractRedeemCode(entry.Description),
	}

	if len(item.Title) < e.rules.MinTitleLen {
		return nil, false
	}

	return item, true
}

// extractTitle prefers the feed's own title field over the first
// normalized body line, then strips glyphs, date tokens, bracketed asides
// and a trailing parenthetical. A short title still carrying a digest
// phrase is a batch header, not an app name.
func (e *Extractor) extractTitle(feedTitle string, lines []string) (string, bool) {
	title := strings.TrimSpace(feedTitle)
	if title == "" && len(lines) > 0 {
		title = lines[0]
	}

	title = norm.NFC.String(title)
	title = glyphPattern.ReplaceAllString(title, "")
	title = titleDatePattern.ReplaceAllString(title, "")
	title = bracketPattern.ReplaceAllString(title, "")
	title = trailingParenPattern.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	if title == "" {
		return "", false
	}
	if containsAny(title, e.rules.DigestPhrases) && len(title) < e.rules.DigestTitleLen {
		return "", false
	}

	return title, true
}

// extractAppLink pulls the first canonical store URL out of the raw
// description. Its absence invalidates the whole entry.
func (e *Extractor) extractAppLink(description string) (string, bool) {
	link := e.linkPattern.FindString(description)
	if link == "" {
		return "", false
	}
	return strings.TrimRight(link, `)"'`), true
}

func (e *Extractor) extractTag(description string) Tag {
	switch {
	case strings.Contains(description, e.rules.FullAppMarker):
		return TagFullAppFree
	case strings.Contains(description, e.rules.InAppMarker):
		return TagInAppFree
	default:
		return TagLimitedFree
	}
}

// extractImage prefers the blockquote screenshot (the store citation has
// the better image), then any image with a CDN/relay hint in its source,
// then the first image of any kind.
func (e *Extractor) extractImage(doc *goquery.Document) string {
	if src, ok := doc.Find("blockquote").First().Find("img").First().Attr("src"); ok && src != "" {
		return src
	}

	var first, hinted string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return true
		}
		if containsAny(src, e.rules.ImageHints) {
			hinted = src
			return false
		}
		if first == "" {
			first = src
		}
		return true
	})

	if hinted != "" {
		return hinted
	}
	return first
}

// extractDescription runs the two-tier fallback: the normalized body lines
// first, then the blockquote's store boilerplate. Both results go through
// the same final cleanup.
func (e *Extractor) extractDescription(doc *goquery.Document, lines []string, title, feedTitle string) string {
	desc := e.descriptionFromLines(lines, title, feedTitle)
	if desc == "" {
		desc = e.descriptionFromQuote(doc)
	}
	return e.cleanDescription(desc)
}

// descriptionFromLines inspects the line right after the title first; the
// channel format usually puts the one-line Chinese description there.
func (e *Extractor) descriptionFromLines(lines []string, title, feedTitle string) string {
	if len(lines) >= 2 && e.isDescriptionLine(lines[1]) {
		return lines[1]
	}
	for i, line := range lines {
		if i == 0 || line == title || line == feedTitle {
			continue
		}
		if e.isDescriptionLine(line) {
			return line
		}
	}
	return ""
}

func (e *Extractor) isDescriptionLine(line string) bool {
	if len(line) < e.rules.MinDescriptionLen || len(line) > e.rules.MaxDescriptionLen {
		return false
	}
	if strings.HasPrefix(line, "http") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "Download") {
		return false
	}
	if strings.Contains(line, e.rules.StoreName) || strings.Contains(line, e.rules.StoreLinkMarker) {
		return false
	}
	return !containsAny(line, e.rules.DescriptionStopPhrases)
}

// descriptionFromQuote mines the blockquote, whose text is the store's
// auto-generated preview ("Download X on the App Store. ... See
// screenshots, ratings and reviews..."). The first paragraph is tried
// with a truncation fallback; the full quote text without one.
func (e *Extractor) descriptionFromQuote(doc *goquery.Document) string {
	quote := doc.Find("blockquote").First()
	if quote.Length() == 0 {
		return ""
	}

	if p := quote.Find("p").First(); p.Length() > 0 {
		if desc := e.quoteCandidate(p.Text(), true); desc != "" {
			return desc
		}
	}
	return e.quoteCandidate(quote.Text(), false)
}

func (e *Extractor) quoteCandidate(text string, truncate bool) string {
	text = downloadLeadPattern.ReplaceAllString(text, "")
	text = seeSuffixPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > e.rules.MinSentenceLen && len(sentence) < e.rules.MaxSentenceLen {
			return sentence
		}
	}

	if truncate && len(text) > e.rules.QuoteFallbackLen {
		out := truncateRunes(text, e.rules.QuoteTruncateLen)
		out = strings.TrimSuffix(out, "…")
		out = strings.TrimSuffix(out, "...")
		return strings.TrimSpace(out)
	}

	return ""
}

// cleanDescription strips whatever promotion survived extraction. A result
// under the minimum length is treated as empty rather than kept.
func (e *Extractor) cleanDescription(desc string) string {
	if desc == "" {
		return ""
	}
	desc = urlPattern.ReplaceAllString(desc, "")
	desc = handlePattern.ReplaceAllString(desc, "")
	desc = hashtagPattern.ReplaceAllString(desc, "")
	desc = e.promoSuffix.ReplaceAllString(desc, "")
	desc = downloadAnyPattern.ReplaceAllString(desc, "")
	desc = seeSuffixPattern.ReplaceAllString(desc, "")
	desc = whitespacePattern.ReplaceAllString(desc, " ")
	desc = strings.TrimSpace(desc)

	if len(desc) < e.rules.MinDescriptionLen {
		return ""
	}
	return desc
}

func (e *Extractor) extractRedeemCode(description string) string {
	match := redeemPattern.FindStringSubmatch(description)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(match[1], `)"'`))
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	return s[:cut]
}
