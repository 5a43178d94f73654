package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) View() string {
	out := "Email     : [ " + m.inputs[0].View() + " ]\n"
	out += "Password  : [ " + m.inputs[1].View() + " ]\n"
	if m.submitting {
		out += "\nSigning in...\n"
	}

	return renderPage("SIGN IN", strings.TrimRight(out, "\n"), "tab: next field | enter: sign in | esc: back")
}
