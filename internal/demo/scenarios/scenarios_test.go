package scenarios

import (
	"slices"
	"testing"

	"github.com/zhubert/charchat/internal/demo"
)

func run(t *testing.T, s *demo.Scenario) *demo.Executor {
	t.Helper()
	e := demo.NewExecutor(demo.DefaultExecutorConfig())
	frames, err := e.Run(s)
	if err != nil {
		t.Fatalf("%s: Run() error = %v", s.Name, err)
	}
	if len(frames) < 2 {
		t.Errorf("%s: got %d frames, want at least 2", s.Name, len(frames))
	}
	return e
}

func texts(e *demo.Executor) []string {
	var out []string
	for _, m := range e.Model().Chat().Controller().Messages() {
		out = append(out, m.Text)
	}
	return out
}

func TestAllScenariosHaveUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		if s.Name == "" || s.Description == "" {
			t.Errorf("scenario %+v missing name or description", s)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGet(t *testing.T) {
	if Get("delete") != Delete {
		t.Error("Get(delete) should return Delete")
	}
	if Get("nope") != nil {
		t.Error("Get(nope) should return nil")
	}
}

func TestTour(t *testing.T) {
	e := run(t, Tour)
	got := texts(e)
	if got[len(got)-1] != "Saturday works for me" {
		t.Errorf("last message = %q", got[len(got)-1])
	}
	if !slices.Equal(e.Copied(), []string{"Saturday works for me"}) {
		t.Errorf("copied = %v", e.Copied())
	}
}

func TestDelete(t *testing.T) {
	e := run(t, Delete)
	got := texts(e)
	if len(got) != 5 || slices.Contains(got, "Sure, let's do it!") {
		t.Errorf("messages = %v", got)
	}
	if n := e.Model().Chat().Controller().Toasts().Len(); n != 0 {
		t.Errorf("%d toasts left, want 0", n)
	}
}

func TestEdit(t *testing.T) {
	e := run(t, Edit)
	got := texts(e)
	if len(got) != 6 || got[3] != "Work has been wild, but all good." {
		t.Errorf("messages = %v", got)
	}
	if _, editing := e.Model().Chat().Controller().Editing(); editing {
		t.Error("edit session should be closed after save")
	}
}
