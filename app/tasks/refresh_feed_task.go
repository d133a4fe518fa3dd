package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bbsimage/appfree/app/database"
	"github.com/bbsimage/appfree/app/feed"
)

type RefreshFeedTask struct {
	Task
	source   EntrySource
	feedURL  string
	pipeline *feed.Pipeline
	renderer *feed.Renderer
	itemRepo database.ItemRepository
	cache    *feed.ResultCache
}

func NewRefreshFeedTask(source EntrySource, feedURL string, pipeline *feed.Pipeline,
	renderer *feed.Renderer, itemRepo database.ItemRepository, cache *feed.ResultCache) *RefreshFeedTask {
	return &RefreshFeedTask{
		Task:     NewTask(TaskTypeRefreshFeed),
		source:   source,
		feedURL:  feedURL,
		pipeline: pipeline,
		renderer: renderer,
		itemRepo: itemRepo,
		cache:    cache,
	}
}

func (t *RefreshFeedTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	now := time.Now()

	entries, err := t.source.Run(ctx, t.feedURL)
	if err != nil {
		// Publish the empty-feed notice so the API has something to
		// serve before the first successful refresh.
		if _, _, ready := t.cache.Get(); !ready {
			result := t.pipeline.Run(nil, now)
			t.cache.Set(result, t.renderer.Run(result.Items, result.DateLabel), 0)
		}
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	result := t.pipeline.Run(entries, now)

	newCount := 0
	for _, item := range result.Items {
		isNew, err := t.itemRepo.MarkSeen(item, now)
		if err != nil {
			return fmt.Errorf("failed to record seen item: %w", err)
		}
		if isNew {
			newCount++
		}
	}

	html := t.renderer.Run(result.Items, result.DateLabel)
	t.cache.Set(result, html, newCount)

	slog.Info("Task completed",
		"type", "RefreshFeed",
		"duration", t.GetDuration(),
		"total", len(entries),
		"accepted", len(result.Items),
		"new", newCount)

	return nil
}
