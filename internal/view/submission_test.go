package view

import (
	"errors"
	"fmt"
	"testing"
)

type textErr struct{ text string }

func (e textErr) Error() string { return "send rejected" }
func (e textErr) Text() string  { return e.text }

type messageErr struct{ msg string }

func (e messageErr) Error() string   { return "send rejected" }
func (e messageErr) Message() string { return e.msg }

func TestReduceReachableSequences(t *testing.T) {
	var s Submission
	steps := []struct {
		ev   Event
		want Status
	}{
		{Event{Kind: EventSubmit}, StatusLoading},
		{Event{Kind: EventResolve}, StatusSuccess},
		{Event{Kind: EventExpire}, StatusIdle},
		{Event{Kind: EventSubmit}, StatusLoading},
		{Event{Kind: EventReject, Err: errors.New("boom")}, StatusError},
		{Event{Kind: EventDismiss}, StatusIdle},
	}
	for i, step := range steps {
		next, ok := Reduce(s, step.ev)
		if !ok || next.Status != step.want {
			t.Fatalf("step %d: got %v, %v; want %v", i, next.Status, ok, step.want)
		}
		s = next
	}
}

func TestReduceRejectsInvalidTransitions(t *testing.T) {
	idle := Submission{}
	loading := Submission{Status: StatusLoading, Message: SendingMessage}
	success := Submission{Status: StatusSuccess, Message: SentMessage}

	invalid := []struct {
		from Submission
		ev   EventKind
	}{
		{idle, EventResolve},
		{idle, EventReject},
		{idle, EventDismiss},
		{idle, EventExpire},
		{loading, EventSubmit},
		{loading, EventDismiss},
		{loading, EventExpire},
		{success, EventResolve},
		{success, EventReject},
	}
	for _, tt := range invalid {
		next, ok := Reduce(tt.from, Event{Kind: tt.ev})
		if ok || next != tt.from {
			t.Errorf("Reduce(%v, %d) = %+v, %v; want unchanged", tt.from.Status, tt.ev, next, ok)
		}
	}
}

func TestReduceMessages(t *testing.T) {
	s, _ := Reduce(Submission{}, Event{Kind: EventSubmit})
	if s.Message != "Sending message..." {
		t.Errorf("loading message = %q", s.Message)
	}
	s, _ = Reduce(s, Event{Kind: EventResolve})
	if s.Message != "✅ Message sent successfully." {
		t.Errorf("success message = %q", s.Message)
	}
	s, _ = Reduce(s, Event{Kind: EventDismiss})
	if s.Message != "" {
		t.Errorf("idle message = %q", s.Message)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"text", textErr{text: "Invalid key"}, "Invalid key"},
		{"wrapped text", fmt.Errorf("emailjs: %w", textErr{text: "Invalid key"}), "Invalid key"},
		{"message", messageErr{msg: "Network down"}, "Network down"},
		{"empty text", textErr{}, FailedMessage},
		{"empty message", messageErr{}, FailedMessage},
		{"plain error", errors.New("dial tcp: connection refused"), FailedMessage},
		{"wrapped plain error", fmt.Errorf("emailjs: sending: %w", errors.New("timeout")), FailedMessage},
		{"empty plain error", errors.New(""), FailedMessage},
		{"nil", nil, FailedMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusLoading.String() != "loading" || Status(9).String() != "Status(9)" {
		t.Errorf("unexpected names %q %q", StatusLoading, Status(9))
	}
}
