package tasks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bbsimage/appfree/app/feed"
)

func newTestScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		feedURL:   "http://example.com/feed",
		interval:  time.Hour,
		ctx:       ctx,
		cancel:    cancel,
		taskQueue: make(chan TaskInterface, 16),
	}
}

func TestSchedulerStopWaitsForPendingRetry(t *testing.T) {
	s := newTestScheduler()

	task := newRefreshTask(&fakeSource{err: fmt.Errorf("connection refused")},
		newFakeItemRepo(), feed.NewResultCache())

	// The failed task schedules a retry; Stop must wait the retry
	// goroutine out instead of closing the queue under it.
	s.executeTask(task)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected Stop to return once the pending retry is resolved")
	}

	if task.GetRetryCount() != 1 {
		t.Errorf("Expected 1 retry to be recorded, got %d", task.GetRetryCount())
	}
}
