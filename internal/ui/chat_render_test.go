package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/charchat/internal/chat"
)

func TestRenderMessages_Alignment(t *testing.T) {
	items := []chat.ViewItem{
		{ID: "1", DisplayText: "hi there", IsMine: false},
		{ID: "2", DisplayText: "hello", IsMine: true},
	}

	r := renderMessages(items, 60, "", "")

	if len(r.spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(r.spans))
	}
	other, mine := r.spans[0], r.spans[1]

	if other.Left != gutterWidth {
		t.Errorf("other bubble left = %d, want %d", other.Left, gutterWidth)
	}
	if mine.Left+mine.Width != 60 {
		t.Errorf("my bubble should end at the right edge, ends at %d", mine.Left+mine.Width)
	}
	if mine.Top != other.Top+other.Height+BubbleGap {
		t.Errorf("my bubble top = %d, want %d", mine.Top, other.Top+other.Height+BubbleGap)
	}

	lines := strings.Split(r.content, "\n")
	if got := ansi.Strip(lines[mine.Top]); !strings.HasSuffix(strings.TrimRight(got, " "), "hello") {
		t.Errorf("my message line = %q", got)
	}
}

func TestRenderMessages_WrapsToBubbleWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	r := renderMessages([]chat.ViewItem{{ID: "1", DisplayText: long}}, 50, "", "")

	maxWidth := MaxBubbleWidth(50 - gutterWidth)
	span := r.spans[0]
	if span.Width > maxWidth {
		t.Errorf("bubble width = %d, want <= %d", span.Width, maxWidth)
	}
	if span.Height < 2 {
		t.Errorf("long message should wrap, height = %d", span.Height)
	}
}

func TestRenderMessages_Cursor(t *testing.T) {
	items := []chat.ViewItem{{ID: "1", DisplayText: "a"}, {ID: "2", DisplayText: "b"}}
	r := renderMessages(items, 40, "", "2")

	lines := strings.Split(ansi.Strip(r.content), "\n")
	if strings.HasPrefix(lines[r.spans[0].Top], cursorMarker) {
		t.Error("cursor drawn on wrong message")
	}
	if !strings.HasPrefix(lines[r.spans[1].Top], cursorMarker) {
		t.Errorf("cursor missing on message 2: %q", lines[r.spans[1].Top])
	}
}

func TestRenderMessages_SpanLookup(t *testing.T) {
	items := []chat.ViewItem{{ID: "1", DisplayText: "a"}, {ID: "2", DisplayText: "b", IsMine: true}}
	r := renderMessages(items, 40, "", "")

	s := r.spans[1]
	got, ok := r.spanAt(s.Left, s.Top)
	if !ok || got.ID != "2" {
		t.Errorf("spanAt(left, top) = %+v, %v", got, ok)
	}
	if _, ok := r.spanAt(0, s.Top); ok {
		t.Error("gutter should not hit a bubble")
	}
	if _, ok := r.spanAt(s.Left, s.Top+s.Height); ok {
		t.Error("gap line should not hit a bubble")
	}
}

func TestRenderMessages_EditingShowsSave(t *testing.T) {
	items := []chat.ViewItem{
		{ID: "1", DisplayText: "a"},
		{ID: "2", DisplayText: "draft", IsMine: true, IsEditingThisOne: true},
	}
	r := renderMessages(items, 60, "draft", "")

	if r.save == nil {
		t.Fatal("expected a save control")
	}
	if r.save.ID != "2" {
		t.Errorf("save for %q, want 2", r.save.ID)
	}
	lines := strings.Split(ansi.Strip(r.content), "\n")
	row := lines[r.save.Top]
	if !strings.Contains(row, saveLabel) {
		t.Errorf("save row %q missing %q", row, saveLabel)
	}
	if idx := strings.Index(row, "✓"); lipgloss.Width(row[:idx]) < r.save.Left {
		t.Errorf("save label starts at %d, span at %d", lipgloss.Width(row[:idx]), r.save.Left)
	}
}

func TestRenderMessageText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		italic bool
		want   []string
		absent []string
	}{
		{
			name: "plain",
			text: "hello",
			want: []string{"hello"},
		},
		{
			name: "action asterisks dropped",
			text: "*waves* hi",
			want: []string{"waves", "hi"},
			absent: []string{"*"},
		},
		{
			name:   "italic first line",
			text:   "thinking\nsecond",
			italic: true,
			want:   []string{"thinking", "second"},
		},
		{
			name:   "fenced code",
			text:   "look:\n```go\nfmt.Println(1)\n```",
			want:   []string{"look:", "Println"},
			absent: []string{"```"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(renderMessageText(tt.text, tt.italic, 40))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("render %q missing %q", got, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("render %q should not contain %q", got, a)
				}
			}
		})
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	out := ansi.Strip(highlightCode("x := 1", "no-such-language", "no-such-style"))
	if !strings.Contains(out, "x := 1") {
		t.Errorf("fallback highlight lost code: %q", out)
	}
}
