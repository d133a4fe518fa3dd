package feed

import (
	"bytes"
	"fmt"
	"html"
)

const placeholderImage = "https://via.placeholder.com/110x110?text=App"

const emptyDescription = "暂无描述"

// Renderer converts accepted items into an embeddable HTML fragment, one
// card per item. Every user-derived field is escaped; the output is a pure
// function of its input.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Run(items []Item, dateLabel string) string {
	var buf bytes.Buffer

	buf.WriteString(styleBlock)
	buf.WriteString("\n<div class=\"gbt-resource-wrapper\">\n")
	buf.WriteString(fmt.Sprintf("<div class=\"gbt-header\">"+runTitleFormat+"</div>\n", html.EscapeString(dateLabel)))

	for _, item := range items {
		r.writeCard(&buf, item)
	}

	buf.WriteString("</div>")
	return buf.String()
}

func (r *Renderer) writeCard(buf *bytes.Buffer, item Item) {
	title := html.EscapeString(item.Title)
	desc := emptyDescription
	if item.Description != "" {
		desc = html.EscapeString(item.Description)
	}
	img := placeholderImage
	if item.ImageURL != "" {
		img = html.EscapeString(item.ImageURL)
	}
	link := html.EscapeString(item.AppLink)
	tag := html.EscapeString(item.Tag.Label())

	buf.WriteString("    <div class=\"gbt-resource-card zib-widget\">\n")
	buf.WriteString(fmt.Sprintf("        <div class=\"gbt-res-preview\"><img src=\"%s\" loading=\"lazy\" alt=\"%s\" onerror=\"this.src='%s'\"></div>\n", img, title, placeholderImage))
	buf.WriteString("        <div class=\"gbt-res-info\">\n")
	buf.WriteString(fmt.Sprintf("            <div class=\"gbt-res-tag\"># %s</div>\n", tag))
	buf.WriteString(fmt.Sprintf("            <h3 class=\"gbt-res-title\">%s</h3>\n", title))
	buf.WriteString(fmt.Sprintf("            <p class=\"gbt-res-desc\">%s</p>\n", desc))
	buf.WriteString("            <div class=\"gbt-res-footer\">\n")
	if item.PublishDate != "" {
		buf.WriteString(fmt.Sprintf("                <span class=\"gbt-publish-date\">发布日期：%s</span>\n", html.EscapeString(item.PublishDate)))
	}
	if item.RedeemCode != "" {
		buf.WriteString(fmt.Sprintf("                <span class=\"gbt-redeem-code\">兑换码: %s</span>\n", html.EscapeString(item.RedeemCode)))
	}
	buf.WriteString("            </div>\n")
	buf.WriteString("        </div>\n")
	buf.WriteString(fmt.Sprintf("        <div class=\"gbt-res-action\"><a href=\"%s\" target=\"_blank\" rel=\"noopener\" class=\"gbt-download-btn\">立即获取</a></div>\n", link))
	buf.WriteString("    </div>\n")
}

// WordPress wraps a rendered fragment in Gutenberg block comments so it
// can be pasted into a post as-is.
func (r *Renderer) WordPress(fragment string) string {
	return "<!-- wp:html -->\n" + fragment + "\n<!-- /wp:html -->\n\n<!-- wp:paragraph -->\n<p></p>\n<!-- /wp:paragraph -->"
}
