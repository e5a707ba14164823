package client

import "sync"

// Decision tells a protected view what to render.
type Decision int

const (
	// DecisionLoading renders a loading placeholder. Returned before the
	// first verification completes so the view never flashes a redirect.
	DecisionLoading Decision = iota
	// DecisionRedirect sends the user to the login view. Issued at most once
	// per guard.
	DecisionRedirect
	// DecisionStay renders nothing further; the redirect already happened.
	DecisionStay
	// DecisionAllow renders the protected content.
	DecisionAllow
)

// Guard derives the render decision for a protected view from auth state
// snapshots. Not-yet-initialized is distinct from not-authenticated: the
// guard holds on loading instead of redirecting until the first verification
// round-trip has resolved.
type Guard struct {
	mu         sync.Mutex
	redirected bool
}

// NewGuard creates a guard for one protected view.
func NewGuard() *Guard {
	return &Guard{}
}

// Evaluate maps the state snapshot to a decision.
func (g *Guard) Evaluate(s State) Decision {
	if !s.Initialized || s.Loading {
		return DecisionLoading
	}
	if s.User == nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.redirected {
			return DecisionStay
		}
		g.redirected = true
		return DecisionRedirect
	}
	return DecisionAllow
}
