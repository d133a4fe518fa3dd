package feed

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006年01月02日"

// runTitleFormat is the product-line header, shared by the run title and
// the rendered fragment.
const runTitleFormat = "App Store 限免应用 – %s"

// Published timestamps arrive RFC-822 style, with either a named or a
// numeric time zone.
var publishedLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
}

const (
	noticeNoEntries = "暂无应用信息"
	noticeNoItems   = "今日暂无限免应用"
)

// Pipeline runs one feed snapshot through classification, extraction and
// validation, accumulating accepted items in feed order.
type Pipeline struct {
	rules      *Rules
	classifier *Classifier
	extractor  *Extractor
}

func NewPipeline(rules *Rules) *Pipeline {
	normalizer := NewNormalizer(rules)
	return &Pipeline{
		rules:      rules,
		classifier: NewClassifier(rules, normalizer),
		extractor:  NewExtractor(rules, normalizer),
	}
}

// Run processes the entries to completion. Rejected entries are dropped
// silently; the only caller-visible "failure" is an empty result carrying
// a notice.
func (p *Pipeline) Run(entries []Entry, now time.Time) RunResult {
	dateLabel := now.Format(dateLayout)
	result := RunResult{
		Title:     fmt.Sprintf(runTitleFormat, dateLabel),
		DateLabel: dateLabel,
	}

	if len(entries) == 0 {
		result.Notice = noticeNoEntries
		return result
	}

	for _, entry := range entries {
		// Cheap pre-filter before full classification.
		if !strings.Contains(entry.Description, p.rules.StoreLinkMarker) {
			continue
		}
		if p.classifier.Run(entry) {
			continue
		}
		item, ok := p.extractor.Run(entry)
		if !ok {
			continue
		}
		// Residual-ad guard: genuine descriptions are never this short
		// after normalization.
		if len(item.Description) < p.rules.MinDescriptionLen {
			continue
		}
		if p.isGenericTitle(item.Title) || len(item.Title) < p.rules.MinAcceptTitleLen {
			continue
		}

		item.PublishDate = p.publishDate(entry.Published, dateLabel)
		result.Items = append(result.Items, *item)
	}

	if len(result.Items) == 0 {
		result.Notice = noticeNoItems
	}
	return result
}

func (p *Pipeline) isGenericTitle(title string) bool {
	for _, generic := range p.rules.GenericTitles {
		if title == generic {
			return true
		}
	}
	return false
}

// publishDate parses the entry's own timestamp when possible and falls
// back to the run date. Never fatal.
func (p *Pipeline) publishDate(published, fallback string) string {
	published = strings.TrimSpace(published)
	if published == "" {
		return fallback
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, published); err == nil {
			return t.Format(dateLayout)
		}
	}
	return fallback
}
