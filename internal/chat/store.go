package chat

import (
	"github.com/google/uuid"

	pkgerrors "github.com/zhubert/charchat/internal/errors"
	"github.com/zhubert/charchat/internal/logger"
)

// Store is the ordered message list. Messages keep insertion order and ids
// are unique.
type Store struct {
	msgs  []Message
	newID func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDFunc replaces the UUID generator used by Append.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) { s.newID = fn }
}

// NewStore creates a store holding seed in order. Seed entries with an id
// already present are dropped.
func NewStore(seed []Message, opts ...StoreOption) *Store {
	s := &Store{
		msgs:  make([]Message, 0, len(seed)),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, m := range seed {
		if s.index(m.ID) >= 0 {
			logger.Warn("chat: dropping duplicate seed message id=%s", m.ID)
			continue
		}
		s.msgs = append(s.msgs, m)
	}
	return s
}

func (s *Store) index(id string) int {
	for i, m := range s.msgs {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Append adds a message at the end with a fresh id.
func (s *Store) Append(text string, sender Sender) Message {
	id := s.newID()
	for id == "" || s.index(id) >= 0 {
		id = s.newID()
	}
	m := Message{ID: id, Text: text, Sender: sender}
	s.msgs = append(s.msgs, m)
	return m
}

// ReplaceText swaps the text of message id, keeping its id and sender.
// Callers validate the text first.
func (s *Store) ReplaceText(id, text string) error {
	i := s.index(id)
	if i < 0 {
		return pkgerrors.MessageNotFound("chat.ReplaceText", id)
	}
	s.msgs[i].Text = text
	return nil
}

// Remove deletes message id.
func (s *Store) Remove(id string) error {
	i := s.index(id)
	if i < 0 {
		return pkgerrors.MessageNotFound("chat.Remove", id)
	}
	s.msgs = append(s.msgs[:i:i], s.msgs[i+1:]...)
	return nil
}

// Get returns message id.
func (s *Store) Get(id string) (Message, bool) {
	i := s.index(id)
	if i < 0 {
		return Message{}, false
	}
	return s.msgs[i], true
}

// List returns a copy of the messages in order.
func (s *Store) List() []Message {
	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Len returns the number of messages.
func (s *Store) Len() int {
	return len(s.msgs)
}
