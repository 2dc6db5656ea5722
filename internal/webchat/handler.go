package webchat

import (
	"context"
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/dilawarpro/mentorship-chat/internal/conversation"
	"github.com/dilawarpro/mentorship-chat/internal/observability/metrics"
	"github.com/dilawarpro/mentorship-chat/pkg/logging"
)

//go:embed widget.js
var WidgetJS []byte

// TranscriptStore persists chat history for replay on reconnect.
type TranscriptStore interface {
	Append(ctx context.Context, sessionID string, msg conversation.TranscriptMessage) error
	List(ctx context.Context, sessionID string, limit int64) ([]conversation.TranscriptMessage, error)
}

// Handler owns the web chat sessions. Each session gets its own dialogue
// engine; the handler only moves frames between the widget and the engine.
type Handler struct {
	transcript    TranscriptStore
	engineOpts    conversation.Options
	autoOpenDelay time.Duration
	widgetJS      []byte
	logger        *logging.Logger
	metrics       *metrics.ConversationMetrics

	mu       sync.RWMutex
	sessions map[string]*chatSession // sessionID -> session
}

// chatSession pairs a dialogue engine with its active WebSocket connection,
// if any. The engine outlives disconnects so a reconnect resumes mid-flow.
type chatSession struct {
	engine *conversation.Engine

	sendMu sync.Mutex
	conn   *websocket.Conn
}

// InboundMessage is what the widget sends.
type InboundMessage struct {
	Type      string `json:"type"` // "message", "ping"
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type      string           `json:"type"` // "message", "typing", "suggestions", "clear_suggestions", "history", "session", "error"
	Text      string           `json:"text,omitempty"`
	Role      string           `json:"role,omitempty"` // "bot" or "user"
	SessionID string           `json:"session_id,omitempty"`
	Timestamp string           `json:"timestamp,omitempty"`
	Options   []string         `json:"options,omitempty"`
	Messages  []HistoryMessage `json:"messages,omitempty"`
}

// HistoryMessage is a simplified message for history responses.
type HistoryMessage struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewHandler creates a web chat handler.
func NewHandler(transcript TranscriptStore, engineOpts conversation.Options, autoOpenDelay time.Duration, widgetJS []byte, logger *logging.Logger, m *metrics.ConversationMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if widgetJS == nil {
		widgetJS = WidgetJS
	}
	return &Handler{
		transcript:    transcript,
		engineOpts:    engineOpts,
		autoOpenDelay: autoOpenDelay,
		widgetJS:      widgetJS,
		logger:        logger,
		metrics:       m,
		sessions:      make(map[string]*chatSession),
	}
}

// generateSessionID creates a random session identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// session returns the chat session for sessionID, creating the engine on
// first sight. The second return reports whether the session is new.
func (h *Handler) session(sessionID string) (*chatSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cs, ok := h.sessions[sessionID]; ok {
		return cs, false
	}
	cs := &chatSession{}
	sink := &sessionSink{handler: h, sessionID: sessionID}
	cs.engine = conversation.NewEngine(conversation.NewStore(), sink, h.engineOpts, h.logger.With("session_id", sessionID), h.metrics)
	h.sessions[sessionID] = cs
	return cs, true
}

// HandleWebSocket upgrades to WebSocket and handles real-time messaging.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = generateSessionID()
	}

	_ = websocket.JSON.Send(conn, OutboundMessage{
		Type:      "session",
		SessionID: sessionID,
	})

	replayed := h.sendHistory(r.Context(), conn, sessionID)

	cs, created := h.session(sessionID)
	cs.sendMu.Lock()
	cs.conn = conn
	cs.sendMu.Unlock()
	defer func() {
		cs.sendMu.Lock()
		if cs.conn == conn {
			cs.conn = nil
		}
		cs.sendMu.Unlock()
		h.metrics.SessionClosed()
	}()

	h.metrics.SessionOpened()
	h.logger.Info("webchat: connection opened", "session_id", sessionID, "new_session", created)

	if created && replayed == 0 {
		cs.engine.Start(r.Context())
	}

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("webchat: connection closed", "session_id", sessionID, "error", err)
			return
		}

		if msg.Type == "ping" {
			h.send(sessionID, OutboundMessage{Type: "pong"})
			continue
		}

		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		h.processMessage(r.Context(), sessionID, msg.Text)
	}
}

// sendHistory replays the stored transcript over a fresh connection and
// reports how many entries it sent.
func (h *Handler) sendHistory(ctx context.Context, conn *websocket.Conn, sessionID string) int {
	if h.transcript == nil {
		return 0
	}
	msgs, err := h.transcript.List(ctx, sessionID, 50)
	if err != nil || len(msgs) == 0 {
		return 0
	}
	history := make([]HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, HistoryMessage{
			Role:      string(m.Sender),
			Text:      m.Body,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}
	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "history", Messages: history})
	return len(history)
}

func (h *Handler) processMessage(ctx context.Context, sessionID, text string) {
	if h.transcript != nil {
		_ = h.transcript.Append(ctx, sessionID, conversation.TranscriptMessage{
			Sender:    conversation.SenderUser,
			Body:      text,
			Timestamp: time.Now().UTC(),
			Kind:      "webchat_inbound",
		})
	}

	h.send(sessionID, OutboundMessage{Type: "typing"})

	cs, _ := h.session(sessionID)
	cs.engine.Submit(ctx, text)
}

// send pushes a frame to the session's active connection, if any.
func (h *Handler) send(sessionID string, msg OutboundMessage) {
	h.mu.RLock()
	cs, ok := h.sessions[sessionID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	cs.sendMu.Lock()
	defer cs.sendMu.Unlock()
	if cs.conn == nil {
		return
	}
	_ = websocket.JSON.Send(cs.conn, msg)
}

// HandleMessage is the HTTP fallback for clients without WebSocket support.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = generateSessionID()
	}

	h.processMessage(r.Context(), req.SessionID, req.Text)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":     "ok",
		"session_id": req.SessionID,
	})
}

// HandleHistory returns chat history for a session.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	if h.transcript == nil {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"messages": []HistoryMessage{}})
		return
	}

	msgs, err := h.transcript.List(r.Context(), sessionID, 100)
	if err != nil {
		h.logger.Error("webchat: failed to load history", "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	history := make([]HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, HistoryMessage{
			Role:      string(m.Sender),
			Text:      m.Body,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"messages": history})
}

// HandleConfig returns widget bootstrap settings.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"auto_open_delay_ms": h.autoOpenDelay.Milliseconds(),
	})
}

// HandleWidgetJS serves the embeddable widget JavaScript.
func (h *Handler) HandleWidgetJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(h.widgetJS)
}

// Drain blocks until every session's pending effect chains have finished.
// Used by graceful shutdown and tests.
func (h *Handler) Drain() {
	h.mu.RLock()
	engines := make([]*conversation.Engine, 0, len(h.sessions))
	for _, cs := range h.sessions {
		engines = append(engines, cs.engine)
	}
	h.mu.RUnlock()
	for _, e := range engines {
		e.Drain()
	}
}
