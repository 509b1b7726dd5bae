package state

import "sync"

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryManager constructs an in-memory Manager implementation.
func NewMemoryManager() Manager {
	return &memoryManager{
		sessions: make(map[int64]*Session),
	}
}

// session returns the live session for a user, creating one if necessary.
// Callers must hold the write lock.
func (m *memoryManager) session(userID int64) *Session {
	sess, ok := m.sessions[userID]
	if !ok {
		sess = &Session{State: StateIdle, Data: make(map[string]string)}
		m.sessions[userID] = sess
	}
	return sess
}

// Get returns a copy of the session for a user, or a default idle session.
func (m *memoryManager) Get(userID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sess, ok := m.sessions[userID]; ok {
		data := make(map[string]string, len(sess.Data))
		for k, v := range sess.Data {
			data[k] = v
		}
		return Session{State: sess.State, Lang: sess.Lang, Data: data}
	}
	return Session{State: StateIdle, Data: make(map[string]string)}
}

// SetState sets the dialog state for the given user.
func (m *memoryManager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).State = st
}

// GetState returns the current dialog state of a user, or StateIdle if none exists.
func (m *memoryManager) GetState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess.State
	}
	return StateIdle
}

// ClearState resets the dialog state to idle without dropping language or data.
func (m *memoryManager) ClearState(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		sess.State = StateIdle
	}
}

// HasState checks if a user has an active state other than idle.
func (m *memoryManager) HasState(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	return ok && sess.State != StateIdle
}

// SetLang stores the user's selected language.
func (m *memoryManager) SetLang(userID int64, lang string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).Lang = lang
}

// GetLang returns the user's selected language, empty if never chosen.
func (m *memoryManager) GetLang(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess.Lang
	}
	return ""
}

// SetData stores a draft key/value pair for the given user session.
func (m *memoryManager) SetData(userID int64, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).Data[key] = value
}

// GetData retrieves a draft value by key for the given user session.
func (m *memoryManager) GetData(userID int64, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	if !ok {
		return "", false
	}
	val, ok := sess.Data[key]
	return val, ok
}

// ClearData removes a draft key/value pair for the given user session.
func (m *memoryManager) ClearData(userID int64, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		delete(sess.Data, key)
	}
}

// Clear resets dialog state and draft data but keeps the selected language.
func (m *memoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		sess.State = StateIdle
		sess.Data = make(map[string]string)
	}
}

// InProgress reports whether the user currently has an active dialog state.
func (m *memoryManager) InProgress(userID int64) bool {
	return m.HasState(userID)
}
