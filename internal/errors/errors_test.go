package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindClipboard, "clipboard error"},
		{KindCatalog, "catalog error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "chat.Remove", Context: "message \"3\"", Err: errors.New("no such message")},
			expected: "chat.Remove: message \"3\": no such message",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "chat.Remove", Err: errors.New("boom")},
			expected: "chat.Remove: boom",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("boom")},
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextBecomesErrorWhenNoneGiven(t *testing.T) {
	err := E(Op("config.Validate"), KindInvalid, "user name is empty")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("E() returned %T, want *Error", err)
	}
	if e.Context != "" {
		t.Errorf("Context = %q, want empty", e.Context)
	}
	if e.Err == nil || e.Err.Error() != "user name is empty" {
		t.Errorf("Err = %v, want context text", e.Err)
	}
	if e.Kind != KindInvalid {
		t.Errorf("Kind = %v, want %v", e.Kind, KindInvalid)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", MessageNotFound("chat.Remove", "9"), KindNotFound, true},
		{"non-matching kind", MessageNotFound("chat.Remove", "9"), KindInvalid, false},
		{"plain error", errors.New("regular"), KindNotFound, false},
		{"nil error", nil, KindNotFound, false},
		{"wrapped", fmt.Errorf("wrapped: %w", E(Op("x"), KindClipboard, "denied")), KindClipboard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(CharacterNotFound("catalog.Get", "x")); got != KindNotFound {
		t.Errorf("GetKind() = %v, want %v", got, KindNotFound)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind() = %v, want %v", got, KindUnknown)
	}
}
