package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wayfarer/internal/model"
)

// Before the first verification resolves the guard must hold on loading, not
// redirect: redirecting early flashes the login screen at signed-in users.
func TestGuard_LoadingBeforeInitialized(t *testing.T) {
	g := NewGuard()

	assert.Equal(t, DecisionLoading, g.Evaluate(State{Loading: true}))
	assert.Equal(t, DecisionLoading, g.Evaluate(State{Initialized: false}))
}

func TestGuard_RedirectsExactlyOnce(t *testing.T) {
	g := NewGuard()
	signedOut := State{Initialized: true}

	assert.Equal(t, DecisionRedirect, g.Evaluate(signedOut))
	assert.Equal(t, DecisionStay, g.Evaluate(signedOut))
	assert.Equal(t, DecisionStay, g.Evaluate(signedOut))
}

func TestGuard_AllowsAuthenticatedUser(t *testing.T) {
	g := NewGuard()
	signedIn := State{
		Initialized: true,
		User:        &model.Identity{ID: 1, Username: "alice", Email: "a@x.com"},
	}

	assert.Equal(t, DecisionAllow, g.Evaluate(signedIn))
}

func TestGuard_FullSequence(t *testing.T) {
	g := NewGuard()

	// App start: verification pending.
	assert.Equal(t, DecisionLoading, g.Evaluate(State{Loading: true}))

	// Verification resolved with no session: one redirect to login.
	assert.Equal(t, DecisionRedirect, g.Evaluate(State{Initialized: true}))

	// After login the protected view renders.
	signedIn := State{
		Initialized: true,
		User:        &model.Identity{ID: 1, Username: "alice", Email: "a@x.com"},
	}
	assert.Equal(t, DecisionAllow, g.Evaluate(signedIn))
}
