package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/contact"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", "email", "subject", "message"}

// submitDoneMsg carries the result of one submission back to Update.
type submitDoneMsg struct {
	ticket int
	err    error
}

// resetFormMsg hides the success banner of ticket.
type resetFormMsg struct {
	ticket int
}

type contactPane struct {
	inputs    [fieldMessage]textinput.Model
	body      textarea.Model
	focus     int
	form      contact.Form
	submitter contact.Submitter
}

func newContactPane(submitter contact.Submitter) contactPane {
	p := contactPane{submitter: submitter}
	placeholders := [fieldMessage]string{"John Doe", "john@example.com", "Project Inquiry"}
	for i := range p.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 254
		p.inputs[i] = in
	}
	p.body = textarea.New()
	p.body.Placeholder = "Tell me about your project..."
	p.body.CharLimit = 5000
	p.body.SetHeight(5)
	p.body.ShowLineNumbers = false
	return p
}

// focusCmd focuses the current field and blurs the others.
func (p *contactPane) focusCmd() tea.Cmd {
	p.blur()
	if p.focus == fieldMessage {
		return p.body.Focus()
	}
	return p.inputs[p.focus].Focus()
}

func (p *contactPane) blur() {
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
	p.body.Blur()
}

func (p *contactPane) message() contact.Message {
	return contact.Message{
		Name:    strings.TrimSpace(p.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(p.inputs[fieldEmail].Value()),
		Subject: strings.TrimSpace(p.inputs[fieldSubject].Value()),
		Message: strings.TrimSpace(p.body.Value()),
	}
}

func (p *contactPane) clear() {
	for i := range p.inputs {
		p.inputs[i].Reset()
	}
	p.body.Reset()
}

func (p *contactPane) update(msg tea.Msg, keys KeyMap) tea.Cmd {
	switch msg := msg.(type) {
	case submitDoneMsg:
		p.form.Finish(msg.ticket, msg.err)
		if p.form.Status() != contact.Success {
			return nil
		}
		p.clear()
		ticket := msg.ticket
		return tea.Tick(contact.ResetAfter, func(time.Time) tea.Msg {
			return resetFormMsg{ticket: ticket}
		})
	case resetFormMsg:
		p.form.Reset(msg.ticket)
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.NextField):
			p.focus = (p.focus + 1) % fieldCount
			return p.focusCmd()
		case key.Matches(msg, keys.PrevField):
			p.focus = (p.focus + fieldCount - 1) % fieldCount
			return p.focusCmd()
		case key.Matches(msg, keys.Submit):
			return p.submit()
		}
	}

	if p.form.Status() == contact.Sending {
		return nil
	}
	var cmd tea.Cmd
	if p.focus == fieldMessage {
		p.body, cmd = p.body.Update(msg)
	} else {
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	}
	return cmd
}

func (p *contactPane) submit() tea.Cmd {
	p.form.Message = p.message()
	ticket, err := p.form.Begin()
	if err != nil {
		return nil
	}
	m := p.form.Message
	submitter := p.submitter
	return func() tea.Msg {
		return submitDoneMsg{ticket: ticket, err: submitter.Submit(context.Background(), m)}
	}
}

func (p contactPane) view(st Styles, email string) string {
	var b strings.Builder
	switch p.form.Status() {
	case contact.Success:
		b.WriteString(st.Success.Render("Message Sent!"))
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("Thank you for reaching out. I'll get back to you soon."))
		return b.String()
	case contact.Sending:
		b.WriteString(st.Muted.Render("Sending..."))
		b.WriteString("\n\n")
	case contact.Failed:
		b.WriteString(st.Failure.Render("Sorry, there was an error sending your message. Press ctrl+s to try again."))
		b.WriteString("\n\n")
	}

	labels := [fieldCount]string{"Name *", "Email *", "Subject", "Message *"}
	for i := 0; i < fieldCount; i++ {
		b.WriteString(st.Title.UnsetMarginBottom().Render(labels[i]))
		b.WriteString("\n")
		if i == fieldMessage {
			b.WriteString(p.body.View())
		} else {
			b.WriteString(p.inputs[i].View())
		}
		b.WriteString("\n")
		if e := p.form.FieldError(fieldKeys[i]); e != "" {
			b.WriteString(st.FieldError.Render(e))
			b.WriteString("\n")
		}
	}
	if email != "" {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("Or reach me directly at " + email))
	}
	return b.String()
}
