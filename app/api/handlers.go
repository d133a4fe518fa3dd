package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bbsimage/appfree/app/cfg"
	"github.com/bbsimage/appfree/app/database"
	"github.com/bbsimage/appfree/app/feed"
	"github.com/bbsimage/appfree/app/tasks"
)

func NewHandler(cache *feed.ResultCache, itemRepo database.ItemRepository,
	renderer *feed.Renderer, scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		cache:     cache,
		itemRepo:  itemRepo,
		renderer:  renderer,
		scheduler: scheduler,
	}
}

// GetPage serves the rendered card fragment. With ?format=wp the fragment
// is wrapped in WordPress block comments, ready to paste into a post.
func (h *Handler) GetPage(c *gin.Context) {
	result, html, ok := h.cache.Get()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "No refresh completed yet, try again shortly",
		})
		return
	}

	c.Header("X-Item-Count", strconv.Itoa(len(result.Items)))
	c.Header("X-Last-Refreshed", h.cache.RefreshedAt().Format(time.RFC3339))

	if c.Query("format") == "wp" {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.String(http.StatusOK, h.renderer.WordPress(html))
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (h *Handler) GetItems(c *gin.Context) {
	result, _, ok := h.cache.Get()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "No refresh completed yet, try again shortly",
		})
		return
	}

	items := make([]ItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, ItemResponse{
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			AppLink:     item.AppLink,
			Tag:         string(item.Tag),
			TagLabel:    item.Tag.Label(),
			RedeemCode:  item.RedeemCode,
			PublishDate: item.PublishDate,
		})
	}

	c.JSON(http.StatusOK, ItemsResponse{
		Title:       result.Title,
		DateLabel:   result.DateLabel,
		Notice:      result.Notice,
		Items:       items,
		RefreshedAt: h.cache.RefreshedAt().Format(time.RFC3339),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	_, _, ready := h.cache.Get()

	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"ready":     ready,
		"version":   cfg.GetVersion(),
	}

	if count, err := h.itemRepo.GetCount(); err == nil {
		health["seen_items"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	result, _, ready := h.cache.Get()

	stats := map[string]interface{}{
		"ready": ready,
	}

	if ready {
		stats["accepted_items"] = len(result.Items)
		stats["new_items"] = h.cache.NewItemCount()
		stats["refreshed_at"] = h.cache.RefreshedAt().Format(time.RFC3339)
	}

	if count, err := h.itemRepo.GetCount(); err == nil {
		stats["seen_items"] = count
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIRefresh(c *gin.Context) {
	if err := h.scheduler.EnqueueRefresh(); err != nil {
		slog.Error("Failed to enqueue refresh", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Unable to schedule refresh",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Refresh scheduled",
	})
}
