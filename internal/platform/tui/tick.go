// Package tui provides the Bubble Tea front end for Riverwood.
// It handles the terminal loop, key mapping, save slots and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed converts a tick count to play time.
func elapsed(tick uint64, tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Duration(tick) * time.Second / time.Duration(tickRate)
}
