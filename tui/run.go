package tui

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type TUIConfig struct {
	Title   string
	Problem string
	Mode    string
}

var (
	mu      sync.RWMutex
	program *tea.Program
	done    chan struct{}
)

// Start initializes and starts the TUI
// Returns nil if TUI started successfully, error if disabled (non-TTY, TERM=dumb, etc.)
func Start(ctx context.Context, cfg TUIConfig) error {
	// Check if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("TUI disabled (not a TTY)")
	}

	// Check for TERM=dumb
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TUI disabled (TERM=dumb)")
	}

	m := NewModel()
	m.snapshot.Title = cfg.Title
	m.snapshot.Problem = cfg.Problem
	m.snapshot.Mode = cfg.Mode

	p := tea.NewProgram(m, tea.WithContext(ctx))
	d := make(chan struct{})

	mu.Lock()
	program = p
	done = d
	mu.Unlock()

	// Run in background (don't wait for it, let it run until ctx is cancelled)
	go func() {
		_, _ = p.Run()
		close(d)
	}()

	return nil
}

// Stop gracefully shuts down the TUI and waits for the terminal to be
// restored, so callers can print a summary afterwards.
func Stop() {
	mu.RLock()
	p := program
	d := done
	mu.RUnlock()
	if p == nil {
		return
	}
	p.Send(MsgShutdown{})
	// Don't call ReleaseTerminal() - Bubble Tea handles cleanup on Quit
	if d != nil {
		select {
		case <-d:
		case <-time.After(2 * time.Second):
		}
	}
}

// Done returns a channel closed when the TUI program exits, whether by
// Stop, by the user quitting, or by context cancellation. Returns nil
// before Start.
func Done() <-chan struct{} {
	mu.RLock()
	defer mu.RUnlock()
	return done
}

// PushState sends a state snapshot to the TUI (thread-safe)
func PushState(s StateSnapshot) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgStateSnapshot(s))
	}
}

// PushEvent sends an event to the TUI (thread-safe)
func PushEvent(e Event) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgEvent(e))
	}
}

// Active reports whether a TUI program is currently running
func Active() bool {
	mu.RLock()
	defer mu.RUnlock()
	return program != nil
}
