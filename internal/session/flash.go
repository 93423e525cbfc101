package session

import "sync"

// Flash records the navigation target and notification produced by the
// most recent operation so the transport can surface them in its
// response. It satisfies the checkout package's Navigator and Notifier
// interfaces.
type Flash struct {
	mu      sync.Mutex
	route   string
	kind    string
	message string
}

func (f *Flash) GoTo(route string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.route = route
}

func (f *Flash) Notify(kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kind = kind
	f.message = message
}

// Drain returns and clears the recorded route and notification.
func (f *Flash) Drain() (route, kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	route, kind, message = f.route, f.kind, f.message
	f.route, f.kind, f.message = "", "", ""
	return route, kind, message
}
