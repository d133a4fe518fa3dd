package api

import (
	"github.com/bbsimage/appfree/app/database"
	"github.com/bbsimage/appfree/app/feed"
	"github.com/bbsimage/appfree/app/tasks"
)

type Handler struct {
	cache     *feed.ResultCache
	itemRepo  database.ItemRepository
	renderer  *feed.Renderer
	scheduler tasks.TaskSchedulerInterface
}

type ItemResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	AppLink     string `json:"app_link"`
	Tag         string `json:"tag"`
	TagLabel    string `json:"tag_label"`
	RedeemCode  string `json:"redeem_code,omitempty"`
	PublishDate string `json:"publish_date,omitempty"`
}

type ItemsResponse struct {
	Title       string         `json:"title"`
	DateLabel   string         `json:"date_label"`
	Notice      string         `json:"notice,omitempty"`
	Items       []ItemResponse `json:"items"`
	RefreshedAt string         `json:"refreshed_at"`
}
