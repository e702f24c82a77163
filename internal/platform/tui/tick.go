// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input sampling, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dash-arena/internal/engine"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Games without a round clock run on it, so their pace follows the frame loop.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SchedMsg carries one tick from an engine.Scheduler.
type SchedMsg struct {
	Kind  engine.TickKind
	sched *engine.Scheduler
}

// waitSched blocks until the scheduler delivers a tick or stops. A paused
// scheduler simply keeps the command waiting until it resumes.
func waitSched(s *engine.Scheduler) tea.Cmd {
	return func() tea.Msg {
		select {
		case k := <-s.Ticks():
			return SchedMsg{Kind: k, sched: s}
		case <-s.Done():
			return nil
		}
	}
}
