package chat

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/charchat/internal/clipboard"
	pkgerrors "github.com/zhubert/charchat/internal/errors"
	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/toast"
)

// Toast texts raised by chat actions.
const (
	ToastCopied     = "Message copied to clipboard"
	ToastCopyFailed = "Failed to copy message"
	ToastDeleted    = "Message deleted"
	ToastUpdated    = "Message updated"
	ToastEmptyEdit  = "Message cannot be empty"
)

// CopyResultMsg reports the outcome of an asynchronous clipboard write.
type CopyResultMsg struct {
	MessageID string
	Err       error
}

// ViewItem is the per-message render state. Rendering is a pure function of
// a []ViewItem.
type ViewItem struct {
	ID               string
	DisplayText      string
	IsMine           bool
	IsEditingThisOne bool
	IsSelected       bool
	Italic           bool
}

// Controller owns the message store, the selection, the edit session, the
// composer draft and the toast queue for one conversation.
type Controller struct {
	meta      Meta
	store     *Store
	toasts    *toast.Queue
	clipboard clipboard.Writer
	bounds    MenuBounds
	onToast   func(toast.Toast)

	selection   *Selection
	copyPending bool
	edit        *EditSession
	composer    string

	log *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithToasts replaces the toast queue.
func WithToasts(q *toast.Queue) Option {
	return func(c *Controller) { c.toasts = q }
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(w clipboard.Writer) Option {
	return func(c *Controller) { c.clipboard = w }
}

// WithMenuBounds replaces the menu placement rule.
func WithMenuBounds(b MenuBounds) Option {
	return func(c *Controller) { c.bounds = b }
}

// WithToastObserver registers fn to be called for every enqueued toast.
func WithToastObserver(fn func(toast.Toast)) Option {
	return func(c *Controller) { c.onToast = fn }
}

// NewController creates a controller for a conversation with the given
// partner and message store.
func NewController(meta Meta, store *Store, opts ...Option) *Controller {
	c := &Controller{
		meta:      meta,
		store:     store,
		clipboard: clipboard.System{},
		bounds:    DefaultMenuBounds,
		log:       logger.WithComponent("chat"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.toasts == nil {
		c.toasts = toast.New()
	}
	return c
}

// Meta returns the conversation partner's header data.
func (c *Controller) Meta() Meta { return c.meta }

// Messages returns the messages in order.
func (c *Controller) Messages() []Message { return c.store.List() }

// Toasts returns the toast queue.
func (c *Controller) Toasts() *toast.Queue { return c.toasts }

func (c *Controller) notify(message string, kind toast.Kind) tea.Cmd {
	t, cmd := c.toasts.Enqueue(message, kind)
	if c.onToast != nil {
		c.onToast(t)
	}
	return cmd
}

// ExpireToast removes a toast whose timer fired.
func (c *Controller) ExpireToast(id uint64) {
	c.toasts.Expire(id)
}

// --- Compose ---

// ComposerDraft returns the text in the composer.
func (c *Controller) ComposerDraft() string { return c.composer }

// SetComposerDraft records the composer text.
func (c *Controller) SetComposerDraft(text string) { c.composer = text }

// Send appends text as a message from the local user and clears the
// composer. Whitespace-only text is ignored.
func (c *Controller) Send(text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}
	m := c.store.Append(text, SenderMe)
	c.composer = ""
	c.log.Debug("message sent", "id", m.ID, "len", len(text))
	return m, true
}

// --- Selection / action menu ---

// OpenMenu selects messageID and opens the action menu anchored near p.
// A menu already open for another message is replaced. Unknown ids are
// ignored.
func (c *Controller) OpenMenu(messageID string, p Point) bool {
	if _, ok := c.store.Get(messageID); !ok {
		c.log.Debug("open menu for unknown message", "id", messageID)
		return false
	}
	c.selection = &Selection{MessageID: messageID, Anchor: c.bounds.Clamp(p)}
	c.copyPending = false
	return true
}

// CloseMenu clears the selection.
func (c *Controller) CloseMenu() {
	c.selection = nil
	c.copyPending = false
}

// MenuOpen reports whether the action menu is showing.
func (c *Controller) MenuOpen() bool { return c.selection != nil }

// Selection returns the current selection.
func (c *Controller) Selection() (Selection, bool) {
	if c.selection == nil {
		return Selection{}, false
	}
	return *c.selection, true
}

// CopyPending reports whether a clipboard write is in flight.
func (c *Controller) CopyPending() bool { return c.copyPending }

// Perform runs a menu action on the selected message.
func (c *Controller) Perform(a MenuAction) tea.Cmd {
	switch a {
	case ActionCopy:
		return c.CopySelected()
	case ActionEdit:
		c.EditSelected()
		return nil
	case ActionDelete:
		return c.DeleteSelected()
	}
	return nil
}

// CopySelected starts writing the selected message to the clipboard. The
// menu stays open until HandleCopyResult sees the outcome.
func (c *Controller) CopySelected() tea.Cmd {
	if c.selection == nil || c.copyPending {
		return nil
	}
	m, ok := c.store.Get(c.selection.MessageID)
	if !ok {
		c.CloseMenu()
		return nil
	}
	c.copyPending = true
	w := c.clipboard
	return func() tea.Msg {
		err := w.WriteText(m.Text)
		if err != nil && !pkgerrors.Is(err, pkgerrors.KindClipboard) {
			err = pkgerrors.E(pkgerrors.Op("chat.Copy"), pkgerrors.KindClipboard, err)
		}
		return CopyResultMsg{MessageID: m.ID, Err: err}
	}
}

// HandleCopyResult raises the copy toast and closes the menu.
func (c *Controller) HandleCopyResult(msg CopyResultMsg) tea.Cmd {
	var cmd tea.Cmd
	if msg.Err != nil {
		c.log.Warn("copy failed", "id", msg.MessageID, "error", msg.Err)
		cmd = c.notify(ToastCopyFailed, toast.Error)
	} else {
		cmd = c.notify(ToastCopied, toast.Success)
	}
	c.CloseMenu()
	return cmd
}

// EditSelected begins an edit session on the selected message and closes
// the menu.
func (c *Controller) EditSelected() {
	if c.selection == nil {
		return
	}
	id := c.selection.MessageID
	c.CloseMenu()
	c.BeginEdit(id)
}

// DeleteSelected removes the selected message and closes the menu.
func (c *Controller) DeleteSelected() tea.Cmd {
	if c.selection == nil {
		return nil
	}
	id := c.selection.MessageID
	c.CloseMenu()
	if err := c.store.Remove(id); err != nil {
		c.log.Debug("delete of stale message ignored", "id", id, "error", err)
		return nil
	}
	if c.edit != nil && c.edit.MessageID == id {
		c.edit = nil
	}
	return c.notify(ToastDeleted, toast.Success)
}

// --- Edit mode ---

// BeginEdit opens an edit session for messageID seeded with its current
// text, replacing any session already open.
func (c *Controller) BeginEdit(messageID string) bool {
	m, ok := c.store.Get(messageID)
	if !ok {
		return false
	}
	c.edit = &EditSession{MessageID: m.ID, Draft: m.Text}
	return true
}

// Editing returns the open edit session.
func (c *Controller) Editing() (EditSession, bool) {
	if c.edit == nil {
		return EditSession{}, false
	}
	return *c.edit, true
}

// UpdateDraft replaces the edit draft.
func (c *Controller) UpdateDraft(text string) {
	if c.edit != nil {
		c.edit.Draft = text
	}
}

// SaveEdit commits the draft. A blank draft raises an error toast and
// keeps the session open.
func (c *Controller) SaveEdit() tea.Cmd {
	if c.edit == nil {
		return nil
	}
	if c.edit.Blank() {
		return c.notify(ToastEmptyEdit, toast.Error)
	}
	session := *c.edit
	c.edit = nil
	if err := c.store.ReplaceText(session.MessageID, session.Draft); err != nil {
		c.log.Debug("save of stale edit ignored", "id", session.MessageID, "error", err)
		return nil
	}
	return c.notify(ToastUpdated, toast.Success)
}

// --- View model ---

// Items returns the render state of every message in order.
func (c *Controller) Items() []ViewItem {
	msgs := c.store.List()
	items := make([]ViewItem, 0, len(msgs))
	for _, m := range msgs {
		item := ViewItem{
			ID:          m.ID,
			DisplayText: m.Text,
			IsMine:      m.IsMine(),
			Italic:      m.Italic,
		}
		if c.edit != nil && c.edit.MessageID == m.ID {
			item.IsEditingThisOne = true
			item.DisplayText = c.edit.Draft
		}
		if c.selection != nil && c.selection.MessageID == m.ID {
			item.IsSelected = true
		}
		items = append(items, item)
	}
	return items
}
