package ui

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/chat"
)

const (
	cursorMarker = "›"
	// gutterWidth is reserved on the left for the list cursor
	gutterWidth = 2
	saveLabel   = "✓ Save"
)

// bubbleSpan records where a message landed in the rendered content, in
// content lines and columns.
type bubbleSpan struct {
	ID     string
	Top    int
	Height int
	Left   int
	Width  int
}

func (s bubbleSpan) contains(x, line int) bool {
	return line >= s.Top && line < s.Top+s.Height && x >= s.Left && x < s.Left+s.Width
}

// renderedMessages is the message list as drawn into the viewport.
type renderedMessages struct {
	content string
	spans   []bubbleSpan
	// save is the inline save control of the bubble under edit
	save *bubbleSpan
}

// spanAt returns the message under column x of content line.
func (r renderedMessages) spanAt(x, line int) (bubbleSpan, bool) {
	for _, s := range r.spans {
		if s.contains(x, line) {
			return s, true
		}
	}
	return bubbleSpan{}, false
}

// spanFor returns the span of a message id.
func (r renderedMessages) spanFor(id string) (bubbleSpan, bool) {
	for _, s := range r.spans {
		if s.ID == id {
			return s, true
		}
	}
	return bubbleSpan{}, false
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// renderActions renders *action* runs emphasized.
func renderActions(line string, emphasis lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range catalog.ActionSegments(line) {
		if seg.Action {
			b.WriteString(emphasis.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// renderMessageText renders message text for a bubble of the given inner
// width. An italic message has its first line emphasized. Fenced code
// blocks are syntax highlighted and truncated rather than wrapped.
func renderMessageText(text string, italic bool, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	lines := strings.Split(text, "\n")
	inCodeBlock := false
	codeBlockLang := ""
	var code []string

	flushCode := func() {
		highlighted := highlightCode(strings.Join(code, "\n"), codeBlockLang, CurrentTheme().CodeStyle)
		for _, l := range strings.Split(highlighted, "\n") {
			out = append(out, ansi.Truncate(l, width, "…"))
		}
		code = nil
		codeBlockLang = ""
	}

	for i, line := range lines {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			} else {
				inCodeBlock = false
				flushCode()
			}
			continue
		}
		if inCodeBlock {
			code = append(code, line)
			continue
		}
		if i == 0 && italic {
			out = append(out, BubbleEmphasisStyle.Render(wrapText(line, width)))
			continue
		}
		out = append(out, wrapText(renderActions(line, BubbleEmphasisStyle), width))
	}
	if inCodeBlock {
		flushCode()
	}

	return strings.Join(out, "\n")
}

// bubbleStyle picks the bubble background for an item.
func bubbleStyle(item chat.ViewItem) lipgloss.Style {
	switch {
	case item.IsSelected:
		return BubbleSelectedStyle
	case item.IsMine:
		return BubbleMineStyle
	default:
		return BubbleOtherStyle
	}
}

// renderBubble renders one message. For the message under edit, editor is
// the inline field's view and the returned int is the line of the save
// control inside the bubble (-1 otherwise).
func renderBubble(item chat.ViewItem, maxWidth int, editor string) (string, int) {
	// Padding(0, 1) on every bubble style
	inner := max(maxWidth-2, 1)

	if item.IsEditingThisOne {
		field := EditFieldStyle.Render(editor)
		save := EditSaveStyle.Render(saveLabel)
		body := lipgloss.JoinVertical(lipgloss.Right, field, save)
		return bubbleStyle(item).Render(body), lipgloss.Height(field)
	}

	text := renderMessageText(item.DisplayText, item.Italic, inner)
	return bubbleStyle(item).Render(text), -1
}

// renderMessages lays out the message list for a panel of the given width.
// cursorID marks the message under the keyboard cursor.
func renderMessages(items []chat.ViewItem, width int, editor, cursorID string) renderedMessages {
	var r renderedMessages
	if width <= 0 {
		width = DefaultWrapWidth
	}
	area := max(width-gutterWidth, 1)
	maxWidth := MaxBubbleWidth(area)

	var lines []string
	for i, item := range items {
		if i > 0 {
			for range BubbleGap {
				lines = append(lines, "")
			}
		}

		bubble, saveLine := renderBubble(item, maxWidth, editor)
		bw := lipgloss.Width(bubble)
		left := gutterWidth
		align := lipgloss.Left
		if item.IsMine {
			left = gutterWidth + max(area-bw, 0)
			align = lipgloss.Right
		}
		placed := lipgloss.PlaceHorizontal(area, align, bubble)

		gutter := strings.Repeat(" ", gutterWidth)
		if item.ID == cursorID {
			gutter = BubbleCursorStyle.Render(cursorMarker) + strings.Repeat(" ", gutterWidth-1)
		}

		top := len(lines)
		bubbleLines := strings.Split(placed, "\n")
		for j, l := range bubbleLines {
			if j == 0 {
				lines = append(lines, gutter+l)
			} else {
				lines = append(lines, strings.Repeat(" ", gutterWidth)+l)
			}
		}

		r.spans = append(r.spans, bubbleSpan{
			ID:     item.ID,
			Top:    top,
			Height: len(bubbleLines),
			Left:   left,
			Width:  bw,
		})
		if saveLine >= 0 {
			sw := lipgloss.Width(EditSaveStyle.Render(saveLabel))
			r.save = &bubbleSpan{
				ID:     item.ID,
				Top:    top + saveLine,
				Height: 1,
				// right aligned inside the bubble's padding
				Left:  left + bw - 1 - sw,
				Width: sw,
			}
		}
	}

	r.content = strings.Join(lines, "\n")
	return r
}
