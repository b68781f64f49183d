package session

import "sync"

// Credentials is the WordPress session pair: the REST nonce plus the login
// cookie it was issued with.
type Credentials struct {
	Nonce  string
	Cookie string
}

// Store isolates the process-wide session state behind get/set/clear so the
// gateway never reads it ad hoc and tests can substitute their own.
type Store interface {
	Get() (Credentials, bool)
	Set(credentials Credentials)
	Clear()
}

// Memory is the in-process Store. It is set on startup from config and
// cleared by the gateway when the backend rejects the session.
type Memory struct {
	mu    sync.RWMutex
	creds Credentials
	valid bool
}

func NewMemory(initial Credentials) *Memory {
	return &Memory{
		creds: initial,
		valid: initial.Nonce != "" || initial.Cookie != "",
	}
}

func (m *Memory) Get() (Credentials, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds, m.valid
}

func (m *Memory) Set(credentials Credentials) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = credentials
	m.valid = true
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = Credentials{}
	m.valid = false
}
