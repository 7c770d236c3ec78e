package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunBootstrapTUI wraps the cluster bootstrap flow with a Bubble Tea TUI.
// work performs the actual bootstrap, sending phase updates on the channel.
func RunBootstrapTUI(ctx context.Context, phases []Phase, work func(ctx context.Context, ch chan<- PhaseMsg) error) error {
	m := NewBootstrapModel(phases)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Run the bootstrap in a background goroutine.
	go func() {
		ch := make(chan PhaseMsg, 10)
		go func() {
			defer close(ch)
			if err := work(ctx, ch); err != nil {
				p.Send(ErrMsg{Err: err})
			}
		}()

		for msg := range ch {
			p.Send(msg)
		}

		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}
