package demo

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/charchat/internal/app"
	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/chat"
	"github.com/zhubert/charchat/internal/clipboard"
	"github.com/zhubert/charchat/internal/config"
	"github.com/zhubert/charchat/internal/keys"
	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/toast"
	"github.com/zhubert/charchat/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and character
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses and clicks (default: 100ms)
	KeyDelay time.Duration

	// CmdTimeout bounds how long a command may run before its result is
	// dropped. Cursor blinks and other timers never finish in time.
	CmdTimeout time.Duration

	// Catalog supplies characters and chat history. Nil uses the built-in
	// catalog.
	Catalog *catalog.Catalog
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		CmdTimeout:       50 * time.Millisecond,
	}
}

// maxSettleDepth caps how many follow-up commands one input may produce.
const maxSettleDepth = 8

// demoStart is the fake clock's starting time.
var demoStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// timer is a pending toast expiry.
type timer struct {
	due time.Time
	fn  func(time.Time) tea.Msg
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	now    time.Time
	timers []timer
	copied []string

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	logger.WithComponent("demo").Debug("demo finished", "scenario", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Copied returns the texts written to the demo clipboard.
func (e *Executor) Copied() []string {
	return e.copied
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	cat := e.config.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return err
		}
	}
	if scenario.Setup.Partner != "" {
		if _, err := cat.Get(scenario.Setup.Partner); err != nil {
			return err
		}
	}

	// No file path: the demo never writes the user's config
	cfg := &config.Config{
		UserName:        scenario.Setup.UserName,
		Theme:           scenario.Setup.Theme,
		ChatCharacterID: scenario.Setup.Partner,
	}
	if cfg.UserName == "" {
		cfg.UserName = config.DefaultUserName
	}
	if cfg.Theme == "" {
		cfg.Theme = config.DefaultTheme
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.now = demoStart
	e.timers = nil
	e.copied = nil
	e.frames = []Frame{}

	clock := func() time.Time { return e.now }
	q := toast.New(
		toast.WithClock(clock),
		toast.WithScheduler(func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
			e.timers = append(e.timers, timer{due: e.now.Add(d), fn: fn})
			return nil
		}),
	)
	cb := clipboard.WriterFunc(func(text string) error {
		e.copied = append(e.copied, text)
		return nil
	})

	e.model = app.New(cfg, cat, "demo",
		app.WithChatOptions(chat.WithToasts(q), chat.WithClipboard(cb)),
		app.WithNotifier(nil),
	)
	e.model.Chat().SetClock(clock)
	e.model.Chat().SetTicker(func(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		// The Hold step moves the clock before running this
		return func() tea.Msg { return fn(e.now) }
	})
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.advance(step.Duration)
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.settle(e.update(keyPress(step.Key)), 0)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.settle(e.update(keyPress(string(ch))), 0)
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepClick:
		x, y, err := e.locate(step.Target)
		if err != nil {
			return err
		}
		// The pending long-press tick is dropped: this is a tap
		e.update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
		e.settle(e.update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}), 0)
		e.captureFrame(index, e.config.KeyDelay)

	case StepHold:
		x, y, err := e.locate(step.Target)
		if err != nil {
			return err
		}
		tick := e.update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
		e.advance(ui.LongPressThreshold)
		e.settle(tick, 0)
		e.settle(e.update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}), 0)
		e.captureFrame(index, ui.LongPressThreshold)

	case StepRightClick:
		x, y, err := e.locate(step.Target)
		if err != nil {
			return err
		}
		e.settle(e.update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight}), 0)
		e.captureFrame(index, e.config.KeyDelay)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// update feeds msg to the model and returns its command.
func (e *Executor) update(msg tea.Msg) tea.Cmd {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	return cmd
}

// settle runs cmd and feeds what it produces back into the model. Commands
// that outlive CmdTimeout are abandoned.
func (e *Executor) settle(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxSettleDepth {
		return
	}
	msg, ok := e.runCmd(cmd)
	if !ok || msg == nil {
		return
	}
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			e.settle(c, depth+1)
		}
	case tea.QuitMsg:
		logger.WithComponent("demo").Debug("demo ignored quit")
	default:
		e.settle(e.update(msg), depth+1)
	}
}

func (e *Executor) runCmd(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(e.config.CmdTimeout):
		return nil, false
	}
}

// advance moves the clock forward and fires every toast timer that came due.
func (e *Executor) advance(d time.Duration) {
	e.now = e.now.Add(d)
	var pending []timer
	var due []timer
	for _, t := range e.timers {
		if t.due.After(e.now) {
			pending = append(pending, t)
		} else {
			due = append(due, t)
		}
	}
	e.timers = pending
	for _, t := range due {
		e.settle(e.update(t.fn(e.now)), 0)
	}
}

// locate returns the screen cell where target is first drawn.
func (e *Executor) locate(target string) (int, int, error) {
	screen := ansi.Strip(e.model.RenderToString())
	for y, line := range strings.Split(screen, "\n") {
		if i := strings.Index(line, target); i >= 0 {
			return ansi.StringWidth(line[:i]), y, nil
		}
	}
	return 0, 0, fmt.Errorf("%q is not on screen", target)
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
