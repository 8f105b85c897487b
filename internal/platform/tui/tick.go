// Package tui provides the Bubble Tea frontend for the game.
// It handles the terminal UI loop, input mapping and config hot reload.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// configReloadedMsg carries a new configuration from the watcher.
type configReloadedMsg struct {
	cfg config.FlappyConfig
}

// configErrorMsg carries a failed reload.
type configErrorMsg struct {
	err error
}

// waitForConfig blocks until the watcher produces a config or an error.
// It returns nil once the watcher is closed, which ends the listening loop.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configReloadedMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}
