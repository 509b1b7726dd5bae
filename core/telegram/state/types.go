// Package state keeps per-user conversation sessions in process memory.
// A session is a live conversation cursor, not a durable record: it holds
// the selected language, the current dialog state and draft fields collected
// across messages, and is intentionally lost on restart.
package state

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Session stores conversation state and temporary data for a user.
type Session struct {
	State State
	Lang  string
	Data  map[string]string
}

// Manager orchestrates user sessions and dialog state transitions.
type Manager interface {
	Get(userID int64) Session

	SetState(userID int64, st State)
	GetState(userID int64) State
	HasState(userID int64) bool
	ClearState(userID int64)

	SetLang(userID int64, lang string)
	GetLang(userID int64) string

	SetData(userID int64, key, value string)
	GetData(userID int64, key string) (string, bool)
	ClearData(userID int64, key string)

	Clear(userID int64)
	InProgress(userID int64) bool
}
