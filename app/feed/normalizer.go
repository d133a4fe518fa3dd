package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var urlLinePattern = regexp.MustCompile(`^https?://`)

// Normalizer reduces raw entry HTML to an ordered list of trimmed text
// lines with promotional blocks removed. Pure function over its input.
type Normalizer struct {
	rules *Rules
}

func NewNormalizer(rules *Rules) *Normalizer {
	return &Normalizer{rules: rules}
}

// Run parses the HTML, strips promotional blocks (blockquotes are kept,
// they carry the store citation) and returns the remaining text lines.
func (n *Normalizer) Run(htmlSrc string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil
	}

	n.stripPromoBlocks(doc)

	var lines []string
	for _, node := range doc.Selection.Nodes {
		n.collectLines(node, &lines)
	}

	return n.filterLines(lines)
}

// PlainText returns the normalized lines joined into a single string,
// used by the classifier for its length signal.
func (n *Normalizer) PlainText(htmlSrc string) string {
	return strings.Join(n.Run(htmlSrc), " ")
}

// stripPromoBlocks removes elements that are pure promotion: an ad keyword
// plus a link-like substring. Blockquote content is left untouched.
func (n *Normalizer) stripPromoBlocks(doc *goquery.Document) {
	doc.Find("a, p, span").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("blockquote").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if containsAny(text, n.rules.AdKeywords) && strings.Contains(strings.ToLower(text), "http") {
			s.Remove()
		}
	})
}

func (n *Normalizer) collectLines(node *html.Node, lines *[]string) {
	if node.Type == html.TextNode {
		if line := strings.TrimSpace(node.Data); line != "" {
			*lines = append(*lines, line)
		}
		return
	}
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		n.collectLines(c, lines)
	}
}

// filterLines drops residual promotion: bare URLs, lines carrying an ad
// keyword, and short hashtag-only lines.
func (n *Normalizer) filterLines(lines []string) []string {
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if urlLinePattern.MatchString(line) {
			continue
		}
		if containsAny(line, n.rules.AdKeywords) {
			continue
		}
		if strings.HasPrefix(line, "#") && len(line) < n.rules.HashtagLineLen {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}
