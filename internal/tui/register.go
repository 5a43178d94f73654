package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Width = 40
	username.Focus()

	email := textinput.New()
	email.Placeholder = "Email"
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "Password (6+ characters)"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "Repeat password"
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{username, email, password, repeat}}
}

func (m registerModel) View() string {
	out := "Username  : [ " + m.inputs[0].View() + " ]\n"
	out += "Email     : [ " + m.inputs[1].View() + " ]\n"
	out += "Password  : [ " + m.inputs[2].View() + " ]\n"
	out += "Repeat    : [ " + m.inputs[3].View() + " ]\n"
	if m.submitting {
		out += "\nCreating account...\n"
	}

	return renderPage("SIGN UP", strings.TrimRight(out, "\n"), "tab: next field | enter: create account | esc: back")
}
