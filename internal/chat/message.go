// Package chat is the message-list state machine behind the chat screen:
// the ordered message store, the single selection that drives the action
// menu, the single inline edit session and the toasts those actions raise.
package chat

import "github.com/zhubert/charchat/internal/catalog"

// Sender identifies who wrote a message.
type Sender string

const (
	SenderMe    Sender = "me"
	SenderOther Sender = "other"
)

// Message is one chat bubble.
type Message struct {
	ID     string
	Text   string
	Sender Sender
	// Italic renders the first line of Text emphasized.
	Italic bool
}

// IsMine reports whether the local user sent the message.
func (m Message) IsMine() bool {
	return m.Sender == SenderMe
}

// FromSeed converts the catalog's starting conversation.
func FromSeed(seed []catalog.SeedMessage) []Message {
	out := make([]Message, 0, len(seed))
	for _, s := range seed {
		out = append(out, Message{
			ID:     s.ID,
			Text:   s.Text,
			Sender: Sender(s.Sender),
			Italic: s.Italic,
		})
	}
	return out
}

// Meta is the chat header data for the conversation partner.
type Meta struct {
	Name      string
	AvatarURL string
}

// MetaFor builds header data from a catalog character.
func MetaFor(c catalog.Character) Meta {
	return Meta{Name: c.Name, AvatarURL: c.ProfilePicURL}
}
