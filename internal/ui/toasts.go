package ui

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/charchat/internal/toast"
)

const toastLayerID = "toasts"

// ToastStack draws the visible toasts of a queue, newest at the bottom,
// centered near the top of the screen.
type ToastStack struct {
	queue *toast.Queue
	now   func() time.Time
	width int
}

// NewToastStack creates a stack reading from q
func NewToastStack(q *toast.Queue) *ToastStack {
	return &ToastStack{queue: q, now: time.Now}
}

// SetClock replaces time.Now, for tests.
func (s *ToastStack) SetClock(now func() time.Time) {
	s.now = now
}

// SetWidth sets the screen width the stack centers in
func (s *ToastStack) SetWidth(width int) {
	s.width = width
}

// SetQueue points the stack at another queue
func (s *ToastStack) SetQueue(q *toast.Queue) {
	s.queue = q
}

// Visible returns the toasts still inside their display window.
func (s *ToastStack) Visible() []toast.Toast {
	if s.queue == nil {
		return nil
	}
	return s.queue.Active(s.now())
}

// View renders the stack, or "" when nothing is visible.
func (s *ToastStack) View() string {
	items := s.Visible()
	if len(items) == 0 {
		return ""
	}

	maxWidth := s.width - 4
	if maxWidth <= 0 {
		maxWidth = DefaultWrapWidth
	}

	var views []string
	for _, t := range items {
		style := ToastSuccessStyle
		if t.Kind == toast.Error {
			style = ToastErrorStyle
		}
		views = append(views, style.MaxWidth(maxWidth).Render(t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Center, views...)
}

// Layer returns the stack positioned below the header, or nil when empty.
func (s *ToastStack) Layer() *lipgloss.Layer {
	view := s.View()
	if view == "" {
		return nil
	}
	col := max(0, (s.width-lipgloss.Width(view))/2)
	return lipgloss.NewLayer(view).X(col).Y(HeaderHeight + 1).Z(4).ID(toastLayerID)
}
