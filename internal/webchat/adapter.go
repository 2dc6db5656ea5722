package webchat

import (
	"context"
	"time"

	"github.com/dilawarpro/mentorship-chat/internal/conversation"
)

// sessionSink implements conversation.EffectSink for one web chat session.
// It mirrors bot messages into the transcript and pushes frames over the
// session's WebSocket. It renders nothing and decides nothing.
type sessionSink struct {
	handler   *Handler
	sessionID string
}

func (s *sessionSink) BotMessage(ctx context.Context, html string) {
	if s.handler.transcript != nil {
		_ = s.handler.transcript.Append(ctx, s.sessionID, conversation.TranscriptMessage{
			Sender:    conversation.SenderBot,
			Body:      html,
			Timestamp: time.Now().UTC(),
			Kind:      "webchat_reply",
		})
	}

	s.handler.send(s.sessionID, OutboundMessage{
		Type:      "message",
		Role:      string(conversation.SenderBot),
		Text:      html,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *sessionSink) SuggestedReplies(ctx context.Context, options []string) {
	s.handler.send(s.sessionID, OutboundMessage{
		Type:    "suggestions",
		Options: options,
	})
}

func (s *sessionSink) ClearSuggestedReplies(ctx context.Context) {
	s.handler.send(s.sessionID, OutboundMessage{Type: "clear_suggestions"})
}
