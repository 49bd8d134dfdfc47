package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var valid = Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Let's build something."}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(valid))

	noSubject := valid
	noSubject.Subject = ""
	assert.NoError(t, Validate(noSubject), "subject is optional")

	tests := []struct {
		name  string
		edit  func(*Message)
		field string
	}{
		{"missing name", func(m *Message) { m.Name = "" }, "name"},
		{"missing email", func(m *Message) { m.Email = "" }, "email"},
		{"bad email", func(m *Message) { m.Email = "not-an-email" }, "email"},
		{"missing message", func(m *Message) { m.Message = "" }, "message"},
		{"long subject", func(m *Message) { m.Subject = strings.Repeat("x", 201) }, "subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.edit(&m)
			err := Validate(m)
			require.Error(t, err)
			fields := FieldErrors(err)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
	assert.Nil(t, FieldErrors(nil))
}

func TestSimulatedSubmit(t *testing.T) {
	s := Simulated{Delay: time.Millisecond}
	assert.NoError(t, s.Submit(context.Background(), valid))

	err := s.Submit(context.Background(), Message{})
	assert.Error(t, err)
	assert.NotNil(t, FieldErrors(err))
}

func TestSimulatedSubmitHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Simulated{Delay: time.Hour}.Submit(ctx, valid)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormLifecycle(t *testing.T) {
	var f Form
	assert.Equal(t, Idle, f.Status())

	_, err := f.Begin()
	require.Error(t, err, "empty form is invalid")
	assert.Equal(t, Idle, f.Status())
	assert.NotEmpty(t, f.FieldError("name"))

	f.Message = valid
	ticket, err := f.Begin()
	require.NoError(t, err)
	assert.Equal(t, Sending, f.Status())
	assert.Empty(t, f.Errors())

	_, err = f.Begin()
	assert.Error(t, err, "no double submit")

	f.Finish(ticket, nil)
	assert.Equal(t, Success, f.Status())
	assert.Equal(t, Message{}, f.Message, "success clears the fields")

	f.Reset(ticket)
	assert.Equal(t, Idle, f.Status())
}

func TestFormFailureAndStaleResults(t *testing.T) {
	f := Form{Message: valid}
	first, err := f.Begin()
	require.NoError(t, err)
	f.Finish(first, errors.New("network"))
	assert.Equal(t, Failed, f.Status())
	assert.Equal(t, valid, f.Message, "failed sends keep the input")

	second, err := f.Begin()
	require.NoError(t, err)
	f.Finish(first, nil)
	assert.Equal(t, Sending, f.Status(), "stale result ignored")

	f.Finish(second, nil)
	f.Reset(first)
	assert.Equal(t, Success, f.Status(), "stale reset ignored")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "sending", Sending.String())
	assert.Equal(t, "error", Failed.String())
}
