package ui

import (
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
	"github.com/Shekhar0165/shekhar-portfolio/internal/core"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

const sendFailedText = "Failed to send message. Please try again."

// contactForm is the send-message modal: three single-line inputs and a
// multi-line message.
type contactForm struct {
	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focus   int
	sending bool
	err     string
}

func newContactForm(width int) contactForm {
	var f contactForm
	placeholders := [fieldMessage]string{"John Doe", "john@example.com", "Let's work together"}
	limits := [fieldMessage]int{100, 254, 200}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		f.inputs[i] = in
	}

	f.message = textarea.New()
	f.message.Placeholder = "Hey, I'd love to connect..."
	f.message.ShowLineNumbers = false
	f.message.Prompt = ""
	f.message.CharLimit = 4000
	f.message.SetHeight(5)
	f.resize(width)
	return f
}

// resize fits the fields to the modal's inner width.
func (f *contactForm) resize(width int) {
	w := max(20, min(width, 60))
	for i := range f.inputs {
		f.inputs[i].Width = w - 2
	}
	f.message.SetWidth(w)
}

// moveFocus steps focus by delta fields, wrapping around.
func (f *contactForm) moveFocus(delta int) tea.Cmd {
	return f.focusField(core.NextIndex(f.focus, delta, fieldCount))
}

// focusField moves focus to field i.
func (f *contactForm) focusField(i int) tea.Cmd {
	f.focus = i
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.message.Blur()
	if i == fieldMessage {
		return f.message.Focus()
	}
	return f.inputs[i].Focus()
}

func (f contactForm) value() content.Message {
	return content.Message{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Subject: strings.TrimSpace(f.inputs[fieldSubject].Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

// validateMessage returns the problem to show under the form, or "" when
// every field is filled and the email parses.
func validateMessage(msg content.Message) string {
	switch {
	case msg.Name == "":
		return "Name is required."
	case msg.Email == "":
		return "Email is required."
	case msg.Subject == "":
		return "Subject is required."
	case msg.Message == "":
		return "Message is required."
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return "Email address looks invalid."
	}
	return ""
}

// update routes a key to the focused field.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldMessage {
		f.message, cmd = f.message.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
