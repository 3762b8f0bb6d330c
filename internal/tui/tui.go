// Package tui implements the interactive TUI for Leadline.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-io/leadline/internal/app"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI over the given app.
func Run(a *app.App) error {
	ref := &programRef{}

	// Notifications raised during operations surface as toasts.
	a.Outbox().SetNotifyHook(func(message string) {
		ref.Send(ToastMsg{Message: message})
	})

	watcher, err := newOutboxWatcher(a.Workspace(), ref)
	if err == nil {
		defer watcher.Stop()
	}

	model := NewModel(a, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	// Store program reference for goroutine sends
	ref.Set(p)

	_, err = p.Run()
	ref.Clear()
	return err
}
