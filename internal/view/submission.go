package view

import (
	"errors"
	"fmt"
)

// Status tags the variant of a Submission.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Notification texts.
const (
	SendingMessage = "Sending message..."
	SentMessage    = "✅ Message sent successfully."
	FailedMessage  = "❌ Failed to send message. Please try again later."
)

// Submission is the contact form notification. Idle carries no message.
type Submission struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Dismissible reports whether the notification shows a dismiss control.
func (s Submission) Dismissible() bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}

// EventKind identifies a submission event.
type EventKind int

const (
	EventSubmit EventKind = iota
	EventResolve
	EventReject
	EventDismiss
	EventExpire
)

// Event drives the submission state machine. Err is only read for
// EventReject.
type Event struct {
	Kind EventKind
	Err  error
}

// Reduce applies ev to s. ok is false when ev does not apply in s, in which
// case s is returned unchanged.
func Reduce(s Submission, ev Event) (next Submission, ok bool) {
	switch ev.Kind {
	case EventSubmit:
		if s.Status == StatusLoading {
			return s, false
		}
		return Submission{Status: StatusLoading, Message: SendingMessage}, true
	case EventResolve:
		if s.Status != StatusLoading {
			return s, false
		}
		return Submission{Status: StatusSuccess, Message: SentMessage}, true
	case EventReject:
		if s.Status != StatusLoading {
			return s, false
		}
		return Submission{Status: StatusError, Message: ErrorMessage(ev.Err)}, true
	case EventDismiss, EventExpire:
		if !s.Dismissible() {
			return s, false
		}
		return Submission{}, true
	}
	return s, false
}

type texter interface{ Text() string }

type messager interface{ Message() string }

// ErrorMessage derives the user facing text for a failed send: the error's
// Text if it has one, else its Message, else FailedMessage. Transport errors
// expose neither and never reach the user verbatim.
func ErrorMessage(err error) string {
	if err == nil {
		return FailedMessage
	}
	var t texter
	if errors.As(err, &t) && t.Text() != "" {
		return t.Text()
	}
	var m messager
	if errors.As(err, &m) && m.Message() != "" {
		return m.Message()
	}
	return FailedMessage
}
