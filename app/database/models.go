package database

import (
	"time"
)

// SeenItem is an accepted listing the service has rendered before. Rows are
// keyed by a hash of title and store link so re-posted listings update the
// existing row instead of creating a new one.
type SeenItem struct {
	ID          int64
	ContentHash string
	Title       string
	AppLink     string
	Tag         string
	RedeemCode  string
	FirstSeenAt time.Time
	LastSeenAt  time.Time
}
