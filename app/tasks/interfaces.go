package tasks

import (
	"context"
	"time"

	"github.com/bbsimage/appfree/app/feed"
)

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetRetryCount() int
	GetMaxRetries() int
	IncrementRetryCount()
	CanRetry() bool
	Start()
	GetDuration() time.Duration
}

// TaskSchedulerInterface defines the interface for background task
// scheduling. The main application starts and stops it; the API uses
// EnqueueRefresh to trigger an out-of-cycle feed refresh.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueRefresh() error
}

// EntrySource produces pipeline entries from the source channel feed.
// Satisfied by fetcher.Fetcher.
type EntrySource interface {
	Run(ctx context.Context, url string) ([]feed.Entry, error)
}
