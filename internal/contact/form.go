package contact

import "fmt"

// Status is the state of the form as seen by the visitor.
type Status int

const (
	Idle Status = iota
	Sending
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Success:
		return "success"
	case Failed:
		return "error"
	}
	return "unknown"
}

// Form tracks one contact form between keystrokes and submission.
type Form struct {
	Message Message
	status  Status
	errors  map[string]string
	seq     int
}

func (f *Form) Status() Status               { return f.status }
func (f *Form) Errors() map[string]string     { return f.errors }
func (f *Form) FieldError(name string) string { return f.errors[name] }

// Begin validates the message and enters Sending. It returns a ticket that
// must accompany the result, or an error when the form is already sending
// or invalid.
func (f *Form) Begin() (int, error) {
	if f.status == Sending {
		return 0, fmt.Errorf("contact: already sending")
	}
	if err := Validate(f.Message); err != nil {
		f.errors = FieldErrors(err)
		return 0, err
	}
	f.errors = nil
	f.status = Sending
	f.seq++
	return f.seq, nil
}

// Finish records the outcome of submission ticket. Success clears the
// fields. Results for stale tickets are ignored.
func (f *Form) Finish(ticket int, err error) {
	if ticket != f.seq || f.status != Sending {
		return
	}
	if err != nil {
		f.status = Failed
		return
	}
	f.status = Success
	f.Message = Message{}
}

// Reset returns a shown success banner to the empty form.
func (f *Form) Reset(ticket int) {
	if ticket == f.seq && f.status == Success {
		f.status = Idle
	}
}
