package webchat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/dilawarpro/mentorship-chat/internal/conversation"
	"github.com/dilawarpro/mentorship-chat/pkg/logging"
)

// mockTranscript stores messages in memory.
type mockTranscript struct {
	mu    sync.Mutex
	store map[string][]conversation.TranscriptMessage
}

func newMockTranscript() *mockTranscript {
	return &mockTranscript{store: make(map[string][]conversation.TranscriptMessage)}
}

func (m *mockTranscript) Append(_ context.Context, sessionID string, msg conversation.TranscriptMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[sessionID] = append(m.store[sessionID], msg)
	return nil
}

func (m *mockTranscript) List(_ context.Context, sessionID string, limit int64) ([]conversation.TranscriptMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.store[sessionID]
	if limit > 0 && int64(len(msgs)) > limit {
		msgs = msgs[int64(len(msgs))-limit:]
	}
	return append([]conversation.TranscriptMessage(nil), msgs...), nil
}

func (m *mockTranscript) messages(sessionID string) []conversation.TranscriptMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]conversation.TranscriptMessage(nil), m.store[sessionID]...)
}

func immediateClock(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func testEngineOpts() conversation.Options {
	return conversation.Options{After: immediateClock}
}

func newTestHandler(ts TranscriptStore) *Handler {
	return NewHandler(ts, testEngineOpts(), 15*time.Second, []byte("// widget"), logging.New("error"), nil)
}

func TestGenerateSessionID(t *testing.T) {
	s1 := generateSessionID()
	s2 := generateSessionID()
	assert.NotEmpty(t, s1)
	assert.NotEqual(t, s1, s2)
	assert.Len(t, s1, 32) // 16 bytes = 32 hex chars
}

func TestHandleMessage_HTTP(t *testing.T) {
	ts := newMockTranscript()
	h := newTestHandler(ts)

	body := `{"session_id":"sess1","text":"Ali"}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	h.Drain()

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "sess1", resp["session_id"])

	msgs := ts.messages("sess1")
	require.NotEmpty(t, msgs)
	assert.Equal(t, conversation.SenderUser, msgs[0].Sender)
	assert.Equal(t, "Ali", msgs[0].Body)

	var sawBot bool
	for _, m := range msgs[1:] {
		if m.Sender == conversation.SenderBot && strings.Contains(m.Body, "Ali") {
			sawBot = true
		}
	}
	assert.True(t, sawBot, "expected a bot reply addressing the visitor by name")
}

func TestHandleMessage_MissingText(t *testing.T) {
	h := newTestHandler(nil)

	body := `{"session_id":"sess1","text":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMessage_GeneratesSessionID(t *testing.T) {
	h := newTestHandler(nil)

	body := `{"text":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	h.Drain()
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["session_id"])
}

func TestHandleMessage_ReusesEngineAcrossTurns(t *testing.T) {
	ts := newMockTranscript()
	h := newTestHandler(ts)

	for _, text := range []string{"Ali", "What are the fees?"} {
		body, _ := json.Marshal(map[string]string{"session_id": "sess1", "text": text})
		req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		h.HandleMessage(w, req)
		h.Drain()
		require.Equal(t, http.StatusOK, w.Code)
	}

	var sawFees bool
	for _, m := range ts.messages("sess1") {
		if m.Sender == conversation.SenderBot && strings.Contains(m.Body, "Rs. 25,000") {
			sawFees = true
		}
	}
	assert.True(t, sawFees, "second turn should reach the menu fee branch")
}

func TestHandleHistory(t *testing.T) {
	ts := newMockTranscript()
	ts.store["sess1"] = []conversation.TranscriptMessage{
		{Sender: conversation.SenderUser, Body: "Hello", Timestamp: time.Now()},
		{Sender: conversation.SenderBot, Body: "Hi there!", Timestamp: time.Now()},
	}
	h := newTestHandler(ts)

	req := httptest.NewRequest(http.MethodGet, "/webchat/history?session=sess1", nil)
	w := httptest.NewRecorder()

	h.HandleHistory(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []HistoryMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "user", resp.Messages[0].Role)
	assert.Equal(t, "Hello", resp.Messages[0].Text)
	assert.Equal(t, "bot", resp.Messages[1].Role)
}

func TestHandleHistory_MissingSession(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/webchat/history", nil)
	w := httptest.NewRecorder()

	h.HandleHistory(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHistory_NoTranscriptStore(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/webchat/history?session=sess1", nil)
	w := httptest.NewRecorder()

	h.HandleHistory(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []HistoryMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Messages)
}

func TestHandleConfig(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/webchat/config", nil)
	w := httptest.NewRecorder()

	h.HandleConfig(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(15000), resp["auto_open_delay_ms"])
}

func TestHandleWidgetJS(t *testing.T) {
	widgetContent := []byte("(function(){ /* widget */ })();")
	h := NewHandler(nil, testEngineOpts(), 0, widgetContent, logging.New("error"), nil)

	req := httptest.NewRequest(http.MethodGet, "/webchat/widget.js", nil)
	w := httptest.NewRecorder()

	h.HandleWidgetJS(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/javascript", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, string(widgetContent), w.Body.String())
}

func TestEmbeddedWidgetIsDefault(t *testing.T) {
	h := NewHandler(nil, testEngineOpts(), 0, nil, logging.New("error"), nil)
	assert.NotEmpty(t, h.widgetJS)
	assert.Contains(t, string(h.widgetJS), "mentorship-chat")
}

func TestWebSocketGreetsNewSession(t *testing.T) {
	h := newTestHandler(newMockTranscript())
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?session=sess-ws"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	var sessionID string
	var greeting string
	for sessionID == "" || greeting == "" {
		var msg OutboundMessage
		require.NoError(t, websocket.JSON.Receive(conn, &msg))
		switch msg.Type {
		case "session":
			sessionID = msg.SessionID
		case "message":
			greeting = msg.Text
		}
	}

	assert.Equal(t, "sess-ws", sessionID)
	assert.Contains(t, greeting, "your name")
}

func TestWebSocketRoundTrip(t *testing.T) {
	h := newTestHandler(newMockTranscript())
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?session=sess-rt"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, websocket.JSON.Send(conn, InboundMessage{Type: "message", SessionID: "sess-rt", Text: "Ali"}))

	var sawTyping, sawReply, sawSuggestions bool
	for !sawTyping || !sawReply || !sawSuggestions {
		var msg OutboundMessage
		require.NoError(t, websocket.JSON.Receive(conn, &msg))
		switch msg.Type {
		case "typing":
			sawTyping = true
		case "message":
			if strings.Contains(msg.Text, "Ali") {
				sawReply = true
			}
		case "suggestions":
			if len(msg.Options) > 0 {
				sawSuggestions = true
			}
		}
	}
}
