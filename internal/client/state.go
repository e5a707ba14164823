package client

import (
	"context"
	"errors"
	"sync"

	"wayfarer/internal/model"
)

// State is the UI-side projection of session validity.
type State struct {
	User        *model.Identity
	Loading     bool
	Initialized bool
	Err         string
}

// Manager is the single source of truth for "who is logged in". It is created
// once at application start and injected into consuming views; Initialized
// flips true exactly once, after the first verification round-trip, and views
// must not make routing decisions before then.
type Manager struct {
	api  *Client
	once sync.Once

	mu    sync.Mutex
	state State
}

// NewManager builds a manager over the API client. The zero state is
// loading=true so consumers render a placeholder until Init resolves.
func NewManager(api *Client) *Manager {
	return &Manager{
		api:   api,
		state: State{Loading: true},
	}
}

// Init performs the one-time session verification. Subsequent calls are
// no-ops; the first completion, success or failure, marks the manager
// initialized for the lifetime of the application instance.
func (m *Manager) Init(ctx context.Context) {
	m.once.Do(func() {
		identity, err := m.api.Verify(ctx)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err == nil {
			m.state.User = identity
		} else {
			m.state.User = nil
		}
		m.state.Loading = false
		m.state.Initialized = true
	})
}

// Login authenticates and updates the current user on success, or records a
// dismissable error message on failure.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)

	identity, err := m.api.Login(ctx, email, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.state.Err = errorMessage(err, "login failed")
		return err
	}
	m.state.User = identity
	m.state.Err = ""
	return nil
}

// Signup registers a new user and signs them in.
func (m *Manager) Signup(ctx context.Context, username, email, password string) error {
	m.setLoading(true)

	identity, err := m.api.Signup(ctx, username, email, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.state.Err = errorMessage(err, "signup failed")
		return err
	}
	m.state.User = identity
	m.state.Err = ""
	return nil
}

// Logout is best-effort over the network: the local session is forgotten even
// when the server call fails, so the user always observes success.
func (m *Manager) Logout(ctx context.Context) {
	_ = m.api.Logout(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.User = nil
	m.state.Err = ""
	m.state.Loading = false
}

// ClearError dismisses the last recorded error message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Err = ""
}

// Snapshot returns a copy of the current state safe for the caller to hold.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := m.state
	if m.state.User != nil {
		user := *m.state.User
		snapshot.User = &user
	}
	return snapshot
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = loading
}

func errorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrNetwork) {
		return "network error, please try again"
	}
	return fallback
}
