package feed

// Core pipeline types

// Entry is one raw syndication feed entry as delivered by the fetcher.
// Description carries the original HTML, untouched.
type Entry struct {
	Title       string
	Description string
	Published   string
}

type Tag string

const (
	TagFullAppFree Tag = "full_app_free"
	TagInAppFree   Tag = "in_app_free"
	TagLimitedFree Tag = "limited_free"
)

// Label returns the badge text shown on rendered cards.
func (t Tag) Label() string {
	switch t {
	case TagFullAppFree:
		return "本体限免"
	case TagInAppFree:
		return "内购限免"
	default:
		return "限时免费"
	}
}

// Item is one accepted app listing. Built once by the Extractor,
// never mutated afterwards.
type Item struct {
	Title       string
	Description string
	ImageURL    string
	AppLink     string
	Tag         Tag
	RedeemCode  string
	PublishDate string
}

// RunResult is the outcome of one pipeline invocation. Items keep feed
// order. Notice is a non-error sentinel set when there is nothing to show.
type RunResult struct {
	Items     []Item
	Title     string
	DateLabel string
	Notice    string
}
