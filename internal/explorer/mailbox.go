package explorer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"travelshowcase/internal/cards"
)

// passMsg delivers a render pass to the model.
type passMsg struct {
	pass cards.Pass
}

// mailbox is the controller's render surface. Render never blocks: it
// keeps only the newest pass and signals a waiting listener, so passes
// produced faster than the program consumes them collapse into one.
type mailbox struct {
	mu     sync.Mutex
	pass   cards.Pass
	full   bool
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newMailbox() *mailbox {
	return &mailbox{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Render implements cards.RenderSurface.
func (box *mailbox) Render(pass cards.Pass) {
	box.mu.Lock()
	box.pass = pass
	box.full = true
	box.mu.Unlock()

	select {
	case box.notify <- struct{}{}:
	default:
	}
}

func (box *mailbox) take() (cards.Pass, bool) {
	box.mu.Lock()
	defer box.mu.Unlock()

	pass, ok := box.pass, box.full
	box.pass, box.full = cards.Pass{}, false
	return pass, ok
}

// listen returns a tea.Cmd that blocks until a pass is posted, then
// delivers it as a passMsg. It returns nil once the mailbox is closed.
func (box *mailbox) listen() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-box.done:
				return nil
			case <-box.notify:
				if pass, ok := box.take(); ok {
					return passMsg{pass: pass}
				}
			}
		}
	}
}

func (box *mailbox) close() {
	box.once.Do(func() { close(box.done) })
}
