package tui

import (
	"strings"

	"blogkeeper/models"
)

type detailModel struct {
	post         models.LocalPost
	categoryName string
	status       string
}

func (m detailModel) View() string {
	p := m.post.Post

	var b strings.Builder
	b.WriteString("Title     : " + p.Title + "\n")
	b.WriteString("Category  : " + m.categoryName + "\n")
	if len(p.Tags) > 0 {
		b.WriteString("Tags      : " + strings.Join(p.Tags, ", ") + "\n")
	}
	if p.Slug != "" {
		b.WriteString("Link      : /post/" + p.Slug + "\n")
	}
	if p.FeaturedImage != "" {
		b.WriteString("Image     : " + p.FeaturedImage + "\n")
	}
	if m.post.Pending {
		b.WriteString("Status    : saving...\n")
	}
	b.WriteString("\n")
	b.WriteString(p.Content + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"POST: "+fitText(p.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"e: edit | ctrl+d: delete | c: copy link | esc: back",
	)
}
