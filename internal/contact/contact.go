// Package contact validates contact form messages and simulates sending
// them. Messages are never delivered or stored.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultDelay = 1200 * time.Millisecond
	// ResetAfter is how long the success banner stays up.
	ResetAfter = 5 * time.Second
)

// Message is one submission. The binding tags are shared with gin's form
// binding.
type Message struct {
	Name    string `form:"name" json:"name" binding:"required,max=120"`
	Email   string `form:"email" json:"email" binding:"required,email,max=254"`
	Subject string `form:"subject" json:"subject" binding:"max=200"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// Validate checks m against its binding tags.
func Validate(m Message) error {
	return validate.Struct(m)
}

// FieldErrors turns a validation error into one message per form field.
// Other errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := formName(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			out[field] = "Enter a valid email address"
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		default:
			out[field] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return out
}

func formName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Subject":
		return "subject"
	}
	return "message"
}

// Submitter delivers a validated message.
type Submitter interface {
	Submit(ctx context.Context, m Message) error
}

// Simulated pretends to talk to a form service: it waits Delay and then
// drops the message.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Submit(ctx context.Context, m Message) error {
	if err := Validate(m); err != nil {
		return err
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	log.Printf("level=info event=contact_simulated subject_len=%d message_len=%d", len(m.Subject), len(m.Message))
	return nil
}
