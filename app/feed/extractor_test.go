package feed

import (
	"strings"
	"testing"
)

func newTestExtractor() *Extractor {
	rules := DefaultRules()
	return NewExtractor(rules, NewNormalizer(rules))
}

func TestExtractorFullEntry(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title: "Nonoverse",
		Description: `<p>Nonoverse</p>` +
			`<p>逻辑填格益智游戏</p>` +
			`<p><a href="https://apps.apple.com/us/app/nonoverse/id123">https://apps.apple.com/us/app/nonoverse/id123</a></p>` +
			`<blockquote><p>Download Nonoverse - Nonogram Puzzles by Bartlomiej Niemtur on the App Store. See screenshots, ratings and reviews.</p>` +
			`<img src="https://cdn.telesco.pe/file/shot.png"></blockquote>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}

	if item.Title != "Nonoverse" {
		t.Errorf("Expected title 'Nonoverse', got '%s'", item.Title)
	}
	if item.Description != "逻辑填格益智游戏" {
		t.Errorf("Expected description '逻辑填格益智游戏', got '%s'", item.Description)
	}
	if item.AppLink != "https://apps.apple.com/us/app/nonoverse/id123" {
		t.Errorf("Expected store link, got '%s'", item.AppLink)
	}
	if item.ImageURL != "https://cdn.telesco.pe/file/shot.png" {
		t.Errorf("Expected blockquote image, got '%s'", item.ImageURL)
	}
	if item.Tag != TagLimitedFree {
		t.Errorf("Expected default tag, got '%s'", item.Tag)
	}
	if item.RedeemCode != "" {
		t.Errorf("Expected no redeem code, got '%s'", item.RedeemCode)
	}
}

func TestExtractorTitleCleanup(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title: "🖼 Nonoverse [热门] (Puzzle) 01/10/2026",
		Description: `<p>逻辑填格益智游戏</p>` +
			`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if item.Title != "Nonoverse" {
		t.Errorf("Expected cleaned title 'Nonoverse', got '%s'", item.Title)
	}
}

func TestExtractorDigestTitleRejected(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title:       "App Store 限免应用",
		Description: `<p>今日合集</p><p><a href="https://apps.apple.com/app/id1">x</a></p>`,
	}

	if _, ok := extractor.Run(entry); ok {
		t.Error("Expected digest header title to be rejected")
	}
}

func TestExtractorMissingLink(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title:       "SomeApp",
		Description: `<p>SomeApp</p><p>一个优秀的天气应用</p>`,
	}

	if _, ok := extractor.Run(entry); ok {
		t.Error("Expected entry without store link to be dropped")
	}
}

func TestExtractorTagMarkers(t *testing.T) {
	extractor := newTestExtractor()

	cases := []struct {
		marker   string
		expected Tag
	}{
		{"#本体限免", TagFullAppFree},
		{"#内购限免", TagInAppFree},
		{"", TagLimitedFree},
	}

	for _, tc := range cases {
		desc := `<p>SomeApp</p><p>一个优秀的天气应用工具</p>` +
			`<p>` + tc.marker + `</p>` +
			`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`
		item, ok := extractor.Run(Entry{Title: "SomeApp", Description: desc})
		if !ok {
			t.Fatalf("Expected extraction to succeed for marker '%s'", tc.marker)
		}
		if item.Tag != tc.expected {
			t.Errorf("Expected tag '%s' for marker '%s', got '%s'", tc.expected, tc.marker, item.Tag)
		}
	}
}

func TestExtractorQuoteFallbackDescription(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title: "SomeApp",
		Description: `<p>SomeApp</p>` +
			`<blockquote><p>Download SomeApp by Dev on the App Store. An elegant weather companion for your pocket. See screenshots, ratings and reviews.</p></blockquote>` +
			`<p><a href="https://apps.apple.com/app/id9">get</a></p>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if item.Description != "An elegant weather companion for your pocket" {
		t.Errorf("Expected quote-derived description, got '%s'", item.Description)
	}
}

func TestExtractorImagePreference(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title: "SomeApp",
		Description: `<p>SomeApp</p><p>一个优秀的天气应用工具</p>` +
			`<img src="https://example.com/icon.png">` +
			`<img src="https://cdn.example.com/screenshot.png">` +
			`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if item.ImageURL != "https://cdn.example.com/screenshot.png" {
		t.Errorf("Expected CDN-hinted image to win, got '%s'", item.ImageURL)
	}
}

func TestExtractorRedeemCode(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title: "Redo",
		Description: `<p>Redo</p><p>一个优秀的效率应用工具</p>` +
			`<p><a href="https://apps.apple.com/redeem/?ctx=offercodes&amp;id=1&amp;code=REDOLIFETIMEFREE">兑换</a></p>` +
			`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if item.RedeemCode != "REDOLIFETIMEFREE" {
		t.Errorf("Expected redeem code 'REDOLIFETIMEFREE', got '%s'", item.RedeemCode)
	}
}

func TestExtractorIsPure(t *testing.T) {
	extractor := newTestExtractor()

	entry := Entry{
		Title: "Nonoverse",
		Description: `<p>Nonoverse</p><p>逻辑填格益智游戏</p>` +
			`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`,
	}

	first, ok1 := extractor.Run(entry)
	second, ok2 := extractor.Run(entry)

	if !ok1 || !ok2 {
		t.Fatal("Expected extraction to succeed on both calls")
	}
	if *first != *second {
		t.Errorf("Expected identical items across calls, got %+v and %+v", *first, *second)
	}
}

func TestExtractQuoteTruncationFallback(t *testing.T) {
	extractor := newTestExtractor()

	// No period anywhere, so no sentence qualifies and the first hundred
	// bytes are kept instead.
	quote := "An expansive handcrafted world full of hidden caves and winding trails where every step uncovers something curious and every corner holds a small surprise built over years by a tiny team that cares about texture pacing and mood throughout"
	entry := Entry{
		Title: "Wanderers",
		Description: `<p>Wanderers</p>` +
			`<p><a href="https://apps.apple.com/us/app/id77">https://apps.apple.com/us/app/id77</a></p>` +
			`<blockquote><p>` + quote + `</p></blockquote>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}

	want := strings.TrimSpace(quote[:100])
	if item.Description != want {
		t.Errorf("Expected truncated quote '%s', got '%s'", want, item.Description)
	}
}

func TestExtractQuoteFullTextFallback(t *testing.T) {
	extractor := newTestExtractor()

	// No paragraph inside the quote, so the full quote text is mined.
	entry := Entry{
		Title: "Raindrop",
		Description: `<p>Raindrop</p>` +
			`<p><a href="https://apps.apple.com/us/app/id88">https://apps.apple.com/us/app/id88</a></p>` +
			`<blockquote>Download Raindrop on the App Store. A delightful puzzle adventure for rainy days. See screenshots and reviews.</blockquote>`,
	}

	item, ok := extractor.Run(entry)
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}

	if item.Description != "A delightful puzzle adventure for rainy days" {
		t.Errorf("Expected sentence from full quote text, got '%s'", item.Description)
	}
}
