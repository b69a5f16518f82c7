// Package tui provides the Bubble Tea integration for the siege battle.
// It handles the terminal UI loop, input mapping, and battle presentation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a display refresh.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends refresh messages at the
// specified rate. The battle simulation runs in its own goroutines; this
// only drives the display.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
