package feed

import (
	"strings"
	"testing"
	"time"
)

func listingEntry(title, description, published string) Entry {
	return Entry{
		Title: title,
		Description: `<p>` + title + `</p>` +
			`<p>` + description + `</p>` +
			`<p><a href="https://apps.apple.com/us/app/id1">https://apps.apple.com/us/app/id1</a></p>`,
		Published: published,
	}
}

func TestPipelineEmptyFeed(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())

	result := pipeline.Run(nil, time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))

	if len(result.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(result.Items))
	}
	if result.Notice != "暂无应用信息" {
		t.Errorf("Expected empty-feed notice, got '%s'", result.Notice)
	}
	if result.DateLabel != "2026年01月10日" {
		t.Errorf("Expected localized date label, got '%s'", result.DateLabel)
	}
	if !strings.Contains(result.Title, "2026年01月10日") {
		t.Errorf("Expected run title to carry the date label, got '%s'", result.Title)
	}
}

func TestPipelineOrderPreserved(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())

	entries := []Entry{
		listingEntry("Nonoverse", "逻辑填格益智游戏", ""),
		listingEntry("SomeWeather", "一个优秀的天气应用工具", ""),
		listingEntry("Redo", "一个优秀的效率应用工具", ""),
	}

	result := pipeline.Run(entries, time.Now())

	if len(result.Items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(result.Items))
	}
	expected := []string{"Nonoverse", "SomeWeather", "Redo"}
	for i, title := range expected {
		if result.Items[i].Title != title {
			t.Errorf("Expected item %d to be '%s', got '%s'", i, title, result.Items[i].Title)
		}
	}
}

func TestPipelineDropsAds(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())

	entries := []Entry{
		{Title: "加入我们", Description: `<p>频道: <a href="https://t.me/ooapps">https://t.me/ooapps</a></p>`},
		listingEntry("Nonoverse", "逻辑填格益智游戏", ""),
		{
			Title: "🖼 App Store 限免应用 01/10/2026",
			Description: `<p>今日限免应用合集快来看看</p>` +
				`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`,
		},
	}

	result := pipeline.Run(entries, time.Now())

	if len(result.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result.Items))
	}
	if result.Items[0].Title != "Nonoverse" {
		t.Errorf("Expected surviving item 'Nonoverse', got '%s'", result.Items[0].Title)
	}
}

func TestPipelineDropsShortDescriptions(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())

	// No second body line and no blockquote: the extractor yields an
	// empty description and the residual-ad guard drops the entry.
	entry := Entry{
		Title: "SomeAppWithAVeryLongName",
		Description: `<p>SomeAppWithAVeryLongName</p>` +
			`<p><a href="https://apps.apple.com/app/id1">https://apps.apple.com/app/id1</a></p>`,
	}

	result := pipeline.Run([]Entry{entry}, time.Now())

	if len(result.Items) != 0 {
		t.Errorf("Expected entry without description to be dropped, got %d items", len(result.Items))
	}
	if result.Notice != "今日暂无限免应用" {
		t.Errorf("Expected zero-accepted notice, got '%s'", result.Notice)
	}
}

func TestPipelinePublishDate(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())
	runDate := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		published string
		expected  string
	}{
		{"Fri, 09 Jan 2026 10:00:00 GMT", "2026年01月09日"},
		{"Fri, 09 Jan 2026 10:00:00 +0800", "2026年01月09日"},
		{"not a timestamp", "2026年01月10日"},
		{"", "2026年01月10日"},
	}

	for _, tc := range cases {
		entries := []Entry{listingEntry("Nonoverse", "逻辑填格益智游戏", tc.published)}
		result := pipeline.Run(entries, runDate)

		if len(result.Items) != 1 {
			t.Fatalf("Expected 1 item for published '%s', got %d", tc.published, len(result.Items))
		}
		if result.Items[0].PublishDate != tc.expected {
			t.Errorf("Expected publish date '%s' for '%s', got '%s'",
				tc.expected, tc.published, result.Items[0].PublishDate)
		}
	}
}

func TestPipelineAcceptedInvariants(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())

	entries := []Entry{
		listingEntry("Nonoverse", "逻辑填格益智游戏", ""),
		listingEntry("SomeWeather", "一个优秀的天气应用工具", ""),
	}

	result := pipeline.Run(entries, time.Now())

	for i, item := range result.Items {
		if item.AppLink == "" {
			t.Errorf("Item %d has empty app link", i)
		}
		if len(item.Title) < 2 {
			t.Errorf("Item %d has too-short title '%s'", i, item.Title)
		}
		if len(item.Description) < 10 {
			t.Errorf("Item %d has too-short description '%s'", i, item.Description)
		}
	}
}

func TestPipelineKeepsDuplicates(t *testing.T) {
	pipeline := NewPipeline(DefaultRules())

	// Cross-entry dedup is a collaborator concern, not the pipeline's.
	entries := []Entry{
		listingEntry("Nonoverse", "逻辑填格益智游戏", ""),
		listingEntry("Nonoverse", "逻辑填格益智游戏", ""),
	}

	result := pipeline.Run(entries, time.Now())

	if len(result.Items) != 2 {
		t.Errorf("Expected duplicates to be preserved, got %d items", len(result.Items))
	}
}
