// Package scenarios contains built-in demo scenarios for charchat.
package scenarios

import (
	"time"

	"github.com/zhubert/charchat/internal/demo"
	"github.com/zhubert/charchat/internal/keys"
)

// Tour pages through the feed, opens the chat and sends a message:
// - Paging to the next character and back
// - Switching to the Messages tab
// - Sending a reply and copying it from the context menu
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Page the feed, open the chat, send and copy a message",
	Width:       100,
	Height:      32,
	Steps: []demo.Step{
		demo.Annotate("The feed shows one character at a time"),
		demo.Wait(1500 * time.Millisecond),
		demo.KeyWithDesc("j", "Next character"),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("k", "Back to the first character"),
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Tab 4 opens the chat"),
		demo.KeyWithDesc("4", "Messages tab"),
		demo.Wait(1500 * time.Millisecond),

		demo.Type("Saturday works for me"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc(keys.Enter, "Send"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Right click a bubble for its actions"),
		demo.RightClick("Saturday works"),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("c", "Copy"),
		demo.Wait(1500 * time.Millisecond),
		demo.Wait(2 * time.Second),
	},
}

// Delete long-presses a message and deletes it, then lets the toast expire.
var Delete = &demo.Scenario{
	Name:        "delete",
	Description: "Hold a message, delete it and watch the toast expire",
	Width:       100,
	Height:      32,
	Steps: []demo.Step{
		demo.Key("4"),
		demo.Wait(1 * time.Second),
		demo.Annotate("Hold the mouse on a bubble"),
		demo.Hold("Sure, let's do it!"),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("d", "Delete"),
		demo.Annotate("Message deleted"),
		demo.Wait(1500 * time.Millisecond),
		demo.Wait(1600 * time.Millisecond),
	},
}

// Edit rewrites a message, is refused an empty save, then saves.
var Edit = &demo.Scenario{
	Name:        "edit",
	Description: "Edit a message, try saving it empty, then save",
	Width:       100,
	Height:      32,
	Steps: concat(
		[]demo.Step{
			demo.Key("4"),
			demo.Wait(1 * time.Second),
			demo.RightClick("busy with work"),
			demo.Wait(800 * time.Millisecond),
			demo.KeyWithDesc("e", "Edit"),
			demo.Wait(800 * time.Millisecond),
		},
		repeat(demo.Key(keys.Backspace), len("Nice! I've been busy with work, but all good.")),
		[]demo.Step{
			demo.Annotate("Empty messages are refused"),
			demo.KeyWithDesc(keys.Enter, "Save"),
			demo.Wait(1500 * time.Millisecond),
			demo.Type("Work has been wild, but all good."),
			demo.Wait(500 * time.Millisecond),
			demo.KeyWithDesc(keys.Enter, "Save"),
			demo.Wait(1500 * time.Millisecond),
			demo.Wait(2 * time.Second),
		},
	),
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Tour,
		Delete,
		Edit,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func repeat(step demo.Step, n int) []demo.Step {
	steps := make([]demo.Step, n)
	for i := range steps {
		steps[i] = step
	}
	return steps
}

func concat(parts ...[]demo.Step) []demo.Step {
	var steps []demo.Step
	for _, p := range parts {
		steps = append(steps, p...)
	}
	return steps
}
