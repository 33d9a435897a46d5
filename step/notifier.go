package step

import "sync"

// Notifier is the shared notification slot a shell displays. Posting
// replaces the current text; it is fire-and-forget.
type Notifier struct {
	mu        sync.Mutex
	text      string
	posted    int
	listeners []func(string)
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier { return &Notifier{} }

// Post stores msg and calls every listener with it.
func (n *Notifier) Post(msg string) {
	n.mu.Lock()
	n.text = msg
	n.posted++
	ls := make([]func(string), len(n.listeners))
	copy(ls, n.listeners)
	n.mu.Unlock()

	for _, fn := range ls {
		fn(msg)
	}
}

// Text returns the current message, or "".
func (n *Notifier) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.text
}

// Posted returns how many messages were posted since creation.
func (n *Notifier) Posted() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.posted
}

// Clear empties the slot.
func (n *Notifier) Clear() {
	n.mu.Lock()
	n.text = ""
	n.mu.Unlock()
}

// OnPost registers fn to be called for every posted message.
func (n *Notifier) OnPost(fn func(string)) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	n.listeners = append(n.listeners, fn)
	n.mu.Unlock()
}
