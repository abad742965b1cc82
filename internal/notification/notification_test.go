package notification

import (
	"errors"
	"testing"

	"github.com/zhubert/charchat/internal/toast"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, _ any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎉 Notification with emoji",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("call = %+v, want title=%q message=%q", mock.calls[0], tt.title, tt.message)
			}
		})
	}
}

func TestToast(t *testing.T) {
	tests := []struct {
		name          string
		toast         toast.Toast
		expectedTitle string
	}{
		{"success", toast.Toast{Message: "Message deleted", Kind: toast.Success}, "charchat"},
		{"error", toast.Toast{Message: "Failed to copy message", Kind: toast.Error}, "charchat: error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := Toast(tt.toast); err != nil {
				t.Fatalf("Toast() error = %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.expectedTitle {
				t.Errorf("title = %q, want %q", mock.calls[0].title, tt.expectedTitle)
			}
			if mock.calls[0].message != tt.toast.Message {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.toast.Message)
			}
		})
	}
}
