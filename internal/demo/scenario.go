// Package demo replays scripted walkthroughs of charchat against a real app
// model. A fake clock drives long presses and toast expiry, so every run of
// a scenario produces the same frames.
package demo

import (
	"fmt"
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait advances the clock (for pacing and toast expiry).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClick taps the first cell showing Target.
	StepClick
	// StepHold presses on Target until the long-press threshold passes.
	StepHold
	// StepRightClick right-clicks the first cell showing Target.
	StepRightClick
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepClick, StepHold and StepRightClick
	Target string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 32)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	UserName string
	Theme    string
	// Partner is the catalog id of the chat partner. Empty means the first
	// character in the catalog.
	Partner string
}

// DefaultSetup returns the setup used when a scenario has none.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		UserName: "Chad",
		Theme:    "midnight",
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 32
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for i, step := range s.Steps {
		switch step.Type {
		case StepClick, StepHold, StepRightClick:
			if step.Target == "" {
				return &ValidationError{Field: "Steps", Message: fmt.Sprintf("step %d has no target", i)}
			}
		case StepKey:
			if step.Key == "" {
				return &ValidationError{Field: "Steps", Message: fmt.Sprintf("step %d has no key", i)}
			}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Click creates a left-click step on the first cell showing target.
func Click(target string) Step {
	return Step{
		Type:   StepClick,
		Target: target,
	}
}

// Hold creates a long-press step on the first cell showing target.
func Hold(target string) Step {
	return Step{
		Type:   StepHold,
		Target: target,
	}
}

// RightClick creates a right-click step on the first cell showing target.
func RightClick(target string) Step {
	return Step{
		Type:   StepRightClick,
		Target: target,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
