package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"blogkeeper/models"
)

type formCategoryModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormCategoryModel() formCategoryModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Width = 40
	name.Focus()

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.Width = 40

	return formCategoryModel{inputs: []textinput.Model{name, description}}
}

func (m formCategoryModel) toCategory() models.Category {
	return models.Category{
		Name:        strings.TrimSpace(m.inputs[0].Value()),
		Description: strings.TrimSpace(m.inputs[1].Value()),
	}
}

func (m formCategoryModel) View() string {
	out := "Name        : [ " + m.inputs[0].View() + " ]\n"
	out += "Description : [ " + m.inputs[1].View() + " ]\n"
	if m.submitting {
		out += "\nCreating...\n"
	}

	return renderPage("NEW CATEGORY", strings.TrimRight(out, "\n"), "tab: next field | enter: create | esc: back")
}
