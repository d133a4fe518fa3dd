package database

import (
	"time"

	"github.com/bbsimage/appfree/app/feed"
)

type ItemRepository interface {
	// MarkSeen records an item, returning true if it was seen for the
	// first time.
	MarkSeen(item feed.Item, seenAt time.Time) (bool, error)
	GetRecent(limit int) ([]SeenItem, error)
	GetCount() (int, error)
}
