// Package tui provides the Bubble Tea host for the paper plane game.
// It handles the terminal UI loop, input mapping, menus, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Owner identifies the model whose tick loop produced it.
type TickMsg struct {
	Time  time.Time
	Owner uint64
}

var tickOwners atomic.Uint64

// nextTickOwner returns a fresh tick loop identity.
func nextTickOwner() uint64 {
	return tickOwners.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, owner uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Owner: owner}
	})
}
