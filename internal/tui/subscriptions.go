package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// relay turns service callbacks into program messages. Notifications are
// coalesced into at most one pending signal: the receiver re-reads the
// current state anyway, and a service callback must never wait for the
// event loop.
type relay struct {
	signal chan struct{}
}

func newRelay() *relay {
	return &relay{signal: make(chan struct{}, 1)}
}

func (r *relay) notify() {
	select {
	case r.signal <- struct{}{}:
	default:
	}
}

// forward sends msg once per pending signal until ctx is done.
func (r *relay) forward(ctx context.Context, send func(tea.Msg), msg tea.Msg) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.signal:
			send(msg)
		}
	}
}
