package chat

import "strings"

// EditSession is the in-progress inline edit of one message.
type EditSession struct {
	MessageID string
	Draft     string
}

// Blank reports whether the draft has no content after trimming.
func (e EditSession) Blank() bool {
	return strings.TrimSpace(e.Draft) == ""
}
