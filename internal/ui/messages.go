package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is one display frame. seq identifies the tick chain that produced
// it so a pause/resume never leaves two chains running.
type frameMsg struct {
	seq int
	at  time.Time
}

func frameCmd(interval time.Duration, seq int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{seq: seq, at: t}
	})
}
