package conversation

import "sync"

// Sender labels who produced a history entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// HistoryEntry is one line of the conversation transcript kept on the
// session. History is append-only and used for display, never for dispatch.
type HistoryEntry struct {
	Sender  Sender `json:"sender"`
	Message string `json:"message"`
}

// Session is the in-memory record of one visitor's conversation. It is
// created when the widget activates and discarded with the connection;
// nothing in it survives a reload.
type Session struct {
	UserName        string
	UserEmail       string
	UserWhatsapp    string
	AppointmentDate string
	AppointmentTime string

	CurrentStep Step
	History     []HistoryEntry

	// AppointmentBooked and BookingInProgress are never both true:
	// confirming a booking clears the in-progress flag in the same mutation.
	AppointmentBooked bool
	BookingInProgress bool
}

// Store owns a single session's mutable state. There is one logical writer
// (the engine), but delayed effect chains run on their own goroutines, so
// every mutation goes through Apply under the lock.
type Store struct {
	mu  sync.Mutex
	s   Session
	gen uint64
}

// NewStore returns a store holding a fresh session at the greeting step.
func NewStore() *Store {
	return &Store{s: Session{CurrentStep: StepGreeting}}
}

// Snapshot returns a copy of the session. The history slice is copied so
// callers can never observe a concurrent append.
func (st *Store) Snapshot() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := st.s
	s.History = append([]HistoryEntry(nil), st.s.History...)
	return s
}

// Apply runs fn against the session under the lock. If fn moves CurrentStep
// to a different step the store's generation advances, invalidating any
// scheduled chain that captured the previous generation.
func (st *Store) Apply(fn func(*Session)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	before := st.s.CurrentStep
	fn(&st.s)
	if st.s.CurrentStep != before {
		st.gen++
	}
}

// Generation returns the current step generation. Scheduled chains capture
// it at schedule time and stop once it advances.
func (st *Store) Generation() uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.gen
}

func (st *Store) appendHistory(sender Sender, message string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.History = append(st.s.History, HistoryEntry{Sender: sender, Message: message})
}
