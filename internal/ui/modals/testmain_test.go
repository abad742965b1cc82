package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"
)

// TestMain installs plain styles so modals render without the ui package.
func TestMain(m *testing.M) {
	plain := lipgloss.NewStyle()
	white := lipgloss.Color("#FFFFFF")
	SetStyles(plain, plain, plain, plain, white, white, white, white, white, white, 56)
	os.Exit(m.Run())
}
