package ui

import (
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/charchat/internal/chat"
	"github.com/zhubert/charchat/internal/keys"
	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/toast"
)

const sendLabel = "Send"

// chatFocus is the part of the chat screen receiving keys outside of menu
// and edit mode.
type chatFocus int

const (
	focusComposer chatFocus = iota
	focusList
)

// LongPressMsg fires LongPressThreshold after a left press on a bubble.
type LongPressMsg struct {
	Seq int
}

// pressState tracks a left button held on a bubble.
type pressState struct {
	seq       int
	messageID string
	at        time.Time
	point     chat.Point
}

// Chat is the chat screen: header, message list, composer, action menu and
// toast overlay, driven by a chat.Controller.
type Chat struct {
	ctrl       *chat.Controller
	header     *ChatHeader
	menu       *ActionMenu
	toasts     *ToastStack
	viewport   viewport.Model
	composer   textarea.Model
	editor     textarea.Model
	onNavigate func(Tab) tea.Cmd

	width  int
	height int
	focus  chatFocus
	cursor string // message id under the keyboard cursor

	rendered  renderedMessages
	editingID string

	press    *pressState
	pressSeq int
	now      func() time.Time
	tick     func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	log *slog.Logger
}

// NewChat creates the chat screen for ctrl. onNavigate is called when the
// user leaves the screen.
func NewChat(ctrl *chat.Controller, onNavigate func(Tab) tea.Cmd) *Chat {
	composer := textarea.New()
	composer.Placeholder = "Message " + ctrl.Meta().Name + "..."
	composer.Prompt = ""
	composer.ShowLineNumbers = false
	composer.CharLimit = 0
	composer.SetHeight(ComposerHeight)
	composer.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, keys.AltEnter)

	editor := textarea.New()
	editor.Prompt = ""
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.DynamicHeight = true
	editor.MinHeight = 1
	editor.MaxHeight = 6
	editor.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, keys.AltEnter)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		ctrl:       ctrl,
		header:     NewChatHeader(ctrl.Meta()),
		menu:       NewActionMenu(),
		toasts:     NewToastStack(ctrl.Toasts()),
		viewport:   vp,
		composer:   composer,
		editor:     editor,
		onNavigate: onNavigate,
		now:        time.Now,
		tick:       tea.Tick,
		log:        logger.WithComponent("chat-view"),
	}
	c.composer.Focus()
	c.refresh()
	c.viewport.GotoBottom()
	return c
}

// SetClock replaces time.Now for long-press timing and toast visibility.
func (c *Chat) SetClock(now func() time.Time) {
	c.now = now
	c.toasts.SetClock(now)
}

// SetTicker replaces tea.Tick for the long-press timer.
func (c *Chat) SetTicker(tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd) {
	c.tick = tick
}

// Controller returns the chat state machine behind the screen.
func (c *Chat) Controller() *chat.Controller {
	return c.ctrl
}

// SetSize sets the chat screen dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	c.header.SetWidth(width)
	c.toasts.SetWidth(width)

	c.viewport.SetWidth(width)
	c.viewport.SetHeight(max(height-HeaderHeight-ComposerTotalHeight, 1))

	// Border, padding and the send button sit beside the text
	sendW := lipgloss.Width(ComposerSendStyle.Render(sendLabel))
	c.composer.SetWidth(max(width-sendW-4, 1))

	// Bubble and field padding on both sides
	c.editor.SetWidth(max(MaxBubbleWidth(width-gutterWidth)-4, 1))

	c.refresh()
}

// RefreshStyles re-renders the bubbles after a theme change.
func (c *Chat) RefreshStyles() {
	c.refresh()
}

// ListFocused reports whether the message list has the keyboard.
func (c *Chat) ListFocused() bool {
	return c.focus == focusList
}

// Cursor returns the message id under the keyboard cursor.
func (c *Chat) Cursor() string {
	return c.cursor
}

// ComposerValue returns the text in the composer.
func (c *Chat) ComposerValue() string {
	return c.composer.Value()
}

// EditorValue returns the text in the inline edit field.
func (c *Chat) EditorValue() string {
	return c.editor.Value()
}

// FooterMode returns the bindings the footer should show for the screen.
func (c *Chat) FooterMode() FooterMode {
	switch {
	case c.ctrl.MenuOpen():
		return FooterChatMenu
	case c.editingID != "":
		return FooterChatEdit
	case c.focus == focusList:
		return FooterChatList
	default:
		return FooterChatCompose
	}
}

// syncEdit moves keyboard focus between the composer and the inline field
// when an edit session starts or ends.
func (c *Chat) syncEdit() {
	session, editing := c.ctrl.Editing()
	switch {
	case editing && session.MessageID != c.editingID:
		c.editingID = session.MessageID
		c.editor.SetValue(session.Draft)
		c.editor.Focus()
		c.composer.Blur()
	case !editing && c.editingID != "":
		c.editingID = ""
		c.editor.Blur()
		c.editor.Reset()
		if c.focus == focusComposer {
			c.composer.Focus()
		}
	}
}

// refresh re-renders the message list into the viewport.
func (c *Chat) refresh() {
	c.syncEdit()
	c.menu.SetPending(c.ctrl.CopyPending())

	items := c.ctrl.Items()
	if c.cursor != "" {
		found := false
		for _, it := range items {
			if it.ID == c.cursor {
				found = true
				break
			}
		}
		if !found {
			c.cursor = ""
			if len(items) > 0 && c.focus == focusList {
				c.cursor = items[len(items)-1].ID
			}
		}
	}

	cursorID := ""
	if c.focus == focusList {
		cursorID = c.cursor
	}
	c.rendered = renderMessages(items, c.viewport.Width(), c.editor.View(), cursorID)
	if len(items) == 0 {
		c.viewport.SetContent(EditHintStyle.Render(c.emptyText()))
		return
	}
	c.viewport.SetContent(c.rendered.content)
}

// scrollTo keeps a message in view.
func (c *Chat) scrollTo(id string) {
	if span, ok := c.rendered.spanFor(id); ok {
		c.viewport.EnsureVisible(span.Top+span.Height-1, 0, 0)
		c.viewport.EnsureVisible(span.Top, 0, 0)
	}
}

// screenPoint converts a content position to screen coordinates.
func (c *Chat) screenPoint(x, line int) chat.Point {
	return chat.Point{X: x, Y: line - c.viewport.YOffset() + HeaderHeight}
}

// contentLine converts a screen row to a content line, or -1 when the row
// is outside the viewport.
func (c *Chat) contentLine(y int) int {
	row := y - HeaderHeight
	if row < 0 || row >= c.viewport.Height() {
		return -1
	}
	return row + c.viewport.YOffset()
}

// openMenu opens the action menu for id at a screen point.
func (c *Chat) openMenu(id string, p chat.Point) {
	if c.ctrl.OpenMenu(id, p) {
		c.menu.Reset()
		c.log.Debug("action menu opened", "id", id, "x", p.X, "y", p.Y)
	}
	c.refresh()
}

// openMenuAtBubble opens the menu below the middle of a message's bubble.
func (c *Chat) openMenuAtBubble(id string) {
	span, ok := c.rendered.spanFor(id)
	if !ok {
		return
	}
	c.scrollTo(id)
	c.openMenu(id, c.screenPoint(span.Left+span.Width/2, span.Top+span.Height-1))
}

// perform runs a menu action and refreshes the screen.
func (c *Chat) perform(a chat.MenuAction) tea.Cmd {
	var text string
	if sel, ok := c.ctrl.Selection(); ok && a == chat.ActionCopy {
		for _, m := range c.ctrl.Messages() {
			if m.ID == sel.MessageID {
				text = m.Text
			}
		}
	}
	cmd := c.ctrl.Perform(a)
	if a == chat.ActionEdit {
		// Reseed the field even when the same message is edited again
		c.editingID = ""
	}
	c.refresh()
	if c.editingID != "" {
		c.scrollTo(c.editingID)
	}
	if a == chat.ActionCopy && cmd != nil {
		// OSC 52 for terminals that support it, alongside the native write
		return tea.Batch(tea.SetClipboard(text), cmd)
	}
	return cmd
}

// send submits the composer.
func (c *Chat) send() {
	if _, ok := c.ctrl.Send(c.composer.Value()); !ok {
		return
	}
	c.composer.Reset()
	c.refresh()
	c.viewport.GotoBottom()
}

// save commits the inline edit.
func (c *Chat) save() tea.Cmd {
	c.ctrl.UpdateDraft(c.editor.Value())
	cmd := c.ctrl.SaveEdit()
	c.refresh()
	return cmd
}

// back leaves the chat screen.
func (c *Chat) back() tea.Cmd {
	if c.onNavigate == nil {
		return nil
	}
	return c.onNavigate(TabHome)
}

// jumpCursor selects the item at idx; negative indexes count from the end.
func (c *Chat) jumpCursor(idx int) {
	items := c.ctrl.Items()
	if len(items) == 0 {
		return
	}
	if idx < 0 {
		idx += len(items)
	}
	c.cursor = items[max(0, min(idx, len(items)-1))].ID
	c.refresh()
	c.scrollTo(c.cursor)
}

// moveCursor moves the list cursor by delta messages.
func (c *Chat) moveCursor(delta int) {
	items := c.ctrl.Items()
	if len(items) == 0 {
		c.cursor = ""
		return
	}
	idx := len(items) - 1
	for i, it := range items {
		if it.ID == c.cursor {
			idx = max(0, min(i+delta, len(items)-1))
			break
		}
	}
	c.cursor = items[idx].ID
	c.refresh()
	c.scrollTo(c.cursor)
}

// setFocus switches between composer and message list.
func (c *Chat) setFocus(f chatFocus) {
	c.focus = f
	if f == focusList {
		c.composer.Blur()
		if c.cursor == "" {
			if items := c.ctrl.Items(); len(items) > 0 {
				c.cursor = items[len(items)-1].ID
			}
		}
	} else if c.editingID == "" {
		c.composer.Focus()
	}
	c.refresh()
	if f == focusList {
		c.scrollTo(c.cursor)
	}
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg := msg.(type) {
	case chat.CopyResultMsg:
		cmd := c.ctrl.HandleCopyResult(msg)
		c.menu.Reset()
		c.refresh()
		return c, cmd

	case toast.ExpiredMsg:
		c.ctrl.ExpireToast(msg.ID)
		return c, nil

	case LongPressMsg:
		return c, c.handleLongPress(msg)

	case tea.KeyPressMsg:
		return c, c.handleKey(msg)

	case tea.MouseClickMsg:
		return c, c.handleClick(msg)

	case tea.MouseReleaseMsg:
		return c, c.handleRelease(msg)

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd
	}

	// Cursor blink and other textarea internals
	var cmd tea.Cmd
	if c.editingID != "" {
		c.editor, cmd = c.editor.Update(msg)
	} else {
		c.composer, cmd = c.composer.Update(msg)
	}
	return c, cmd
}

func (c *Chat) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case keys.PgUp:
		c.viewport.PageUp()
		return nil
	case keys.PgDown:
		c.viewport.PageDown()
		return nil
	}

	if c.ctrl.MenuOpen() {
		return c.handleMenuKey(key)
	}

	if c.editingID != "" {
		if key == keys.Enter || key == keys.CtrlS {
			return c.save()
		}
		var cmd tea.Cmd
		c.editor, cmd = c.editor.Update(msg)
		c.ctrl.UpdateDraft(c.editor.Value())
		c.refresh()
		return cmd
	}

	if c.focus == focusList {
		switch key {
		case keys.Tab, keys.ShiftTab:
			c.setFocus(focusComposer)
		case keys.Up, "k":
			c.moveCursor(-1)
		case keys.Down, "j":
			c.moveCursor(1)
		case keys.Home:
			c.jumpCursor(0)
		case keys.End:
			c.jumpCursor(-1)
		case keys.Enter, keys.Space:
			if c.cursor != "" {
				c.openMenuAtBubble(c.cursor)
			}
		case keys.Escape:
			return c.back()
		}
		return nil
	}

	switch key {
	case keys.Enter:
		c.send()
		return nil
	case keys.Tab, keys.ShiftTab:
		c.setFocus(focusList)
		return nil
	case keys.Escape:
		return c.back()
	}

	var cmd tea.Cmd
	c.composer, cmd = c.composer.Update(msg)
	c.ctrl.SetComposerDraft(c.composer.Value())
	return cmd
}

func (c *Chat) handleMenuKey(key string) tea.Cmd {
	if c.ctrl.CopyPending() {
		return nil
	}
	switch key {
	case keys.Escape:
		c.ctrl.CloseMenu()
		c.refresh()
		return nil
	case keys.Up, "k":
		c.menu.MoveCursor(-1)
		return nil
	case keys.Down, "j":
		c.menu.MoveCursor(1)
		return nil
	case keys.Enter, keys.Space:
		return c.perform(c.menu.Cursor())
	case keys.Delete:
		return c.perform(chat.ActionDelete)
	}
	if a, ok := ActionForKey(key); ok {
		return c.perform(a)
	}
	return nil
}

// menuCompositor lays out the open menu for hit testing.
func (c *Chat) menuCompositor() *lipgloss.Compositor {
	sel, ok := c.ctrl.Selection()
	if !ok {
		return nil
	}
	pos := c.menu.Place(sel.Anchor, c.width, c.height)
	return lipgloss.NewCompositor(c.menu.Layer(pos))
}

func (c *Chat) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	m := msg.Mouse()

	if comp := c.menuCompositor(); comp != nil {
		hit := comp.Hit(m.X, m.Y)
		if hit.Empty() {
			// Backdrop
			if !c.ctrl.CopyPending() {
				c.ctrl.CloseMenu()
				c.refresh()
			}
			return nil
		}
		if a, ok := actionForLayer(hit.ID()); ok && !c.ctrl.CopyPending() {
			return c.perform(a)
		}
		return nil
	}

	if m.Y < HeaderHeight {
		if m.Button == tea.MouseLeft && c.header.BackHit(m.X) {
			return c.back()
		}
		return nil
	}

	line := c.contentLine(m.Y)
	if line < 0 {
		// Composer area
		if m.Button == tea.MouseLeft && c.editingID == "" {
			if m.X >= c.width-lipgloss.Width(ComposerSendStyle.Render(sendLabel)) {
				c.send()
				return nil
			}
			c.setFocus(focusComposer)
		}
		return nil
	}

	if s := c.rendered.save; s != nil && m.Button == tea.MouseLeft && s.contains(m.X, line) {
		return c.save()
	}

	span, ok := c.rendered.spanAt(m.X, line)
	if !ok {
		return nil
	}
	if c.editingID == span.ID && m.Button == tea.MouseLeft {
		// Left clicks inside the field belong to the field
		return nil
	}

	p := chat.Point{X: m.X, Y: m.Y}
	switch m.Button {
	case tea.MouseRight:
		c.openMenu(span.ID, p)
		return nil
	case tea.MouseLeft:
		c.pressSeq++
		c.press = &pressState{seq: c.pressSeq, messageID: span.ID, at: c.now(), point: p}
		seq := c.pressSeq
		return c.tick(LongPressThreshold, func(time.Time) tea.Msg {
			return LongPressMsg{Seq: seq}
		})
	}
	return nil
}

func (c *Chat) handleLongPress(msg LongPressMsg) tea.Cmd {
	if c.press == nil || c.press.seq != msg.Seq {
		return nil
	}
	press := *c.press
	c.press = nil
	c.openMenu(press.messageID, press.point)
	return nil
}

func (c *Chat) handleRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if c.press == nil {
		return nil
	}
	press := *c.press
	c.press = nil

	if c.now().Sub(press.at) < LongPressThreshold {
		return nil
	}
	m := msg.Mouse()
	line := c.contentLine(m.Y)
	if span, ok := c.rendered.spanAt(m.X, line); !ok || span.ID != press.messageID {
		return nil
	}
	c.openMenu(press.messageID, press.point)
	return nil
}

// composerView renders the composer row, or the edit hint while a message
// is being edited.
func (c *Chat) composerView() string {
	if c.editingID != "" {
		hint := EditHintStyle.Render("Editing message · enter to save")
		return lipgloss.PlaceVertical(ComposerTotalHeight, lipgloss.Center, hint)
	}
	style := ComposerStyle
	if c.focus == focusComposer {
		style = ComposerFocusStyle
	}
	send := ComposerSendStyle.Render(sendLabel)
	box := style.Width(max(c.width-lipgloss.Width(send), 1)).Render(c.composer.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, box, send)
}

// dim fades every cell of the backdrop behind the menu.
func dim(scr uv.ScreenBuffer, width, height int) {
	for y := range height {
		for x := range width {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Attrs |= uv.AttrFaint
			scr.SetCell(x, y, cell)
		}
	}
}

// overlay draws the menu and toasts over the base view.
func (c *Chat) overlay(base string) string {
	var layers []*lipgloss.Layer
	menuOpen := false
	if sel, ok := c.ctrl.Selection(); ok {
		menuOpen = true
		layers = append(layers, c.menu.Layer(c.menu.Place(sel.Anchor, c.width, c.height)))
	}
	if l := c.toasts.Layer(); l != nil {
		layers = append(layers, l)
	}
	if len(layers) == 0 || c.width <= 0 || c.height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, c.width, c.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)
	if menuOpen {
		dim(scr, c.width, c.height)
	}
	lipgloss.NewCompositor(layers...).Draw(scr, area)
	return scr.Render()
}

// View renders the chat screen
func (c *Chat) View() string {
	base := lipgloss.JoinVertical(lipgloss.Left,
		c.header.View(),
		c.viewport.View(),
		c.composerView(),
	)
	return c.overlay(base)
}

// emptyText is shown when every message has been deleted.
func (c *Chat) emptyText() string {
	name := strings.TrimSpace(c.ctrl.Meta().Name)
	if name == "" {
		return "No messages yet"
	}
	return "Say hi to " + name
}
