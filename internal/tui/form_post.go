package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"blogkeeper/models"
)

// formPostModel is the create/edit form. Focus moves over the text inputs,
// then the category selector, then the content textarea.
type formPostModel struct {
	inputs     []textinput.Model
	content    textarea.Model
	categories []models.Category
	catIdx     int
	focus      int
	editing    bool
	clientID   string
	submitting bool
}

const (
	formFieldTitle = iota
	formFieldTags
	formFieldImage
	formFieldCategory
	formFieldContent
	formFieldCount
)

func newFormPostModel(post *models.LocalPost, categories []models.Category) formPostModel {
	title := textinput.New()
	title.Placeholder = "Title (up to 100 characters)"
	title.Width = 50
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "Tags, comma separated"
	tags.Width = 50

	image := textinput.New()
	image.Placeholder = "Featured image path (optional)"
	image.Width = 50

	content := textarea.New()
	content.Placeholder = "Write your post (10+ characters)"
	content.SetWidth(54)
	content.SetHeight(8)

	m := formPostModel{
		inputs:     []textinput.Model{title, tags, image},
		content:    content,
		categories: categories,
	}
	if post == nil {
		return m
	}

	m.editing = true
	m.clientID = post.ClientID
	m.inputs[formFieldTitle].SetValue(post.Post.Title)
	m.inputs[formFieldTags].SetValue(strings.Join(post.Post.Tags, ", "))
	m.content.SetValue(post.Post.Content)
	for i, c := range categories {
		if c.CategoryID == post.Post.CategoryID {
			m.catIdx = i
			break
		}
	}
	return m
}

func (m formPostModel) category() (models.Category, bool) {
	if len(m.categories) == 0 || m.catIdx < 0 || m.catIdx >= len(m.categories) {
		return models.Category{}, false
	}
	return m.categories[m.catIdx], true
}

func (m formPostModel) tags() []string {
	raw := strings.Split(m.inputs[formFieldTags].Value(), ",")
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m formPostModel) imagePath() string {
	return strings.TrimSpace(m.inputs[formFieldImage].Value())
}

// toDraft builds the post submitted on create.
func (m formPostModel) toDraft() models.Post {
	category, _ := m.category()
	return models.Post{
		Title:      strings.TrimSpace(m.inputs[formFieldTitle].Value()),
		Content:    strings.TrimSpace(m.content.Value()),
		CategoryID: category.CategoryID,
		Tags:       m.tags(),
	}
}

// toUpdate builds the partial update submitted on edit. Every form field is
// sent; the form always shows the full post, so all of them are meaningful.
func (m formPostModel) toUpdate() models.PostUpdate {
	title := strings.TrimSpace(m.inputs[formFieldTitle].Value())
	content := strings.TrimSpace(m.content.Value())
	tags := m.tags()

	update := models.PostUpdate{
		Title:   &title,
		Content: &content,
		Tags:    &tags,
	}
	if category, ok := m.category(); ok {
		update.CategoryID = &category.CategoryID
	}
	return update
}

func (m formPostModel) View() string {
	title := "NEW POST"
	if m.editing {
		title = "EDIT: " + fitText(m.inputs[formFieldTitle].Value(), 40)
	}

	categoryLine := "(no categories, press ctrl+n to add one)"
	if category, ok := m.category(); ok {
		categoryLine = "< " + category.Name + " >"
	}
	if m.focus == formFieldCategory {
		categoryLine = "> " + categoryLine
	} else {
		categoryLine = "  " + categoryLine
	}

	out := "Title     : [ " + m.inputs[formFieldTitle].View() + " ]\n"
	out += "Tags      : [ " + m.inputs[formFieldTags].View() + " ]\n"
	out += "Image     : [ " + m.inputs[formFieldImage].View() + " ]\n"
	out += "Category  : " + categoryLine + "\n\n"
	out += "Content:\n"
	out += m.content.View() + "\n"
	if m.submitting {
		out += "\nSaving...\n"
	}

	return renderPage(
		title,
		strings.TrimRight(out, "\n"),
		"tab: next field | left/right: category | ctrl+n: new category | ctrl+s: save | esc: cancel",
	)
}
