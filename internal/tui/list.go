package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"blogkeeper/models"
)

type listModel struct {
	posts      []models.LocalPost
	categories []models.Category
	idx        int
	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
	username   string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.LocalPost, bool) {
	if len(m.posts) == 0 || m.idx < 0 || m.idx >= len(m.posts) {
		return models.LocalPost{}, false
	}
	return m.posts[m.idx], true
}

func (m listModel) categoryName(id int64) string {
	for _, c := range m.categories {
		if c.CategoryID == id {
			return c.Name
		}
	}
	return "-"
}

func (m listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading posts...\n")
		return renderPage("POSTS", strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	if len(m.posts) == 0 {
		b.WriteString("No posts yet\n")
	} else {
		b.WriteString("     Title                          │ Category        │ Tags\n")
		b.WriteString("─────────────────────────────────────┼─────────────────┼────────────────\n")
		for i, p := range m.posts {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			marker := " "
			if p.Pending {
				marker = "*"
			}
			b.WriteString(fmt.Sprintf(
				"%s %s %-30s │ %-15s │ %s\n",
				cursor,
				marker,
				fitText(p.Post.Title, 30),
				fitText(m.categoryName(p.Post.CategoryID), 15),
				fitText(strings.Join(p.Post.Tags, ", "), 16),
			))
		}
	}

	title := "POSTS"
	if m.username != "" {
		title += " (" + m.username + ")"
	}
	if m.refreshing {
		title += "  " + m.spinner.View()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), listHotKeys)
}

const listHotKeys = "n: new | enter: open | e: edit | ctrl+d: delete | r: refresh | c: copy link | ctrl+l: logout"
