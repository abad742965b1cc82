package app

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/chat"
	"github.com/zhubert/charchat/internal/clipboard"
	"github.com/zhubert/charchat/internal/config"
	"github.com/zhubert/charchat/internal/keys"
	"github.com/zhubert/charchat/internal/toast"
)

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testHarness wraps a Model with a fake clock, toast timers and clipboard.
type testHarness struct {
	m      *Model
	cfg    *config.Config
	now    time.Time
	timers []func(time.Time) tea.Msg
	copied []string
}

// testConfig creates a config backed by a temp file.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	return cfg
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int, opts ...Option) *testHarness {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}

	h := &testHarness{cfg: testConfig(t), now: testStart}
	clock := func() time.Time { return h.now }
	q := toast.New(
		toast.WithClock(clock),
		toast.WithScheduler(func(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
			h.timers = append(h.timers, fn)
			return nil
		}),
	)
	cb := clipboard.WriterFunc(func(text string) error {
		h.copied = append(h.copied, text)
		return nil
	})

	opts = append([]Option{WithChatOptions(chat.WithToasts(q), chat.WithClipboard(cb))}, opts...)
	h.m = New(h.cfg, cat, "0.0.0-test", opts...)
	h.m.Chat().SetClock(clock)
	h.m.Chat().SetTicker(func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		return func() tea.Msg { return fn(h.now.Add(d)) }
	})
	h.m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press and returns the resulting command.
func (h *testHarness) sendKey(key string) tea.Cmd {
	_, cmd := h.m.Update(keyPress(key))
	return cmd
}

// typeText sends each character of text as a separate key press.
func (h *testHarness) typeText(text string) {
	for _, r := range text {
		h.sendKey(string(r))
	}
}

// run executes cmd and feeds its message back into the model. Only use it
// for commands that return immediately.
func (h *testHarness) run(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_, next := h.m.Update(cmd())
	return next
}

func (h *testHarness) click(button tea.MouseButton, x, y int) tea.Cmd {
	_, cmd := h.m.Update(tea.MouseClickMsg{X: x, Y: y, Button: button})
	return cmd
}

func (h *testHarness) release(x, y int) tea.Cmd {
	_, cmd := h.m.Update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
	return cmd
}

// screenLines returns the rendered view without styling.
func (h *testHarness) screenLines() []string {
	return strings.Split(ansi.Strip(h.m.RenderToString()), "\n")
}

// cellOf returns the screen cell where text is first drawn.
func (h *testHarness) cellOf(t *testing.T, text string) (int, int) {
	t.Helper()
	for y, line := range h.screenLines() {
		if i := strings.Index(line, text); i >= 0 {
			return ansi.StringWidth(line[:i]), y
		}
	}
	t.Fatalf("%q not on screen:\n%s", text, strings.Join(h.screenLines(), "\n"))
	return 0, 0
}

// expireToasts fires every pending toast timer at the current clock.
func (h *testHarness) expireToasts() {
	timers := h.timers
	h.timers = nil
	for _, fn := range timers {
		h.m.Update(fn(h.now))
	}
}

func (h *testHarness) messageTexts() []string {
	var out []string
	for _, m := range h.m.Chat().Controller().Messages() {
		out = append(out, m.Text)
	}
	return out
}

func (h *testHarness) activeToasts() []string {
	var out []string
	for _, t := range h.m.Chat().Controller().Toasts().Active(h.now) {
		out = append(out, t.Message)
	}
	return out
}
