package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTranscriptStore is an in-process transcript store for single-node
// deployments and tests. Each session keeps at most maxMessages entries.
type MemoryTranscriptStore struct {
	mu          sync.RWMutex
	sessions    map[string][]TranscriptMessage
	maxMessages int
}

func NewMemoryTranscriptStore(maxMessages int) *MemoryTranscriptStore {
	if maxMessages <= 0 {
		maxMessages = 250
	}
	return &MemoryTranscriptStore{
		sessions:    make(map[string][]TranscriptMessage),
		maxMessages: maxMessages,
	}
}

func (s *MemoryTranscriptStore) Append(_ context.Context, sessionID string, msg TranscriptMessage) error {
	if s == nil || sessionID == "" {
		return nil
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := append(s.sessions[sessionID], msg)
	if len(msgs) > s.maxMessages {
		msgs = msgs[len(msgs)-s.maxMessages:]
	}
	s.sessions[sessionID] = msgs
	return nil
}

func (s *MemoryTranscriptStore) List(_ context.Context, sessionID string, limit int64) ([]TranscriptMessage, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.sessions[sessionID]
	if limit > 0 && int64(len(msgs)) > limit {
		msgs = msgs[int64(len(msgs))-limit:]
	}
	return append([]TranscriptMessage(nil), msgs...), nil
}
