// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	pkgerrors "github.com/zhubert/charchat/internal/errors"
	"github.com/zhubert/charchat/internal/logger"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteText calls f.
func (f WriterFunc) WriteText(text string) error { return f(text) }

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the native clipboard. It is safe to call multiple times;
// the first result is cached.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Log("Clipboard: Failed to initialize: %v", err)
			initErr = pkgerrors.E(pkgerrors.Op("clipboard.Init"), pkgerrors.KindClipboard, err)
			return
		}
		logger.Log("Clipboard: Initialized successfully")
	})
	return initErr
}

// System is the Writer backed by the native clipboard.
type System struct{}

// WriteText writes text to the native clipboard.
func (System) WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}
