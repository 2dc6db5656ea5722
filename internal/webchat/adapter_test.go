package webchat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilawarpro/mentorship-chat/internal/conversation"
)

func TestSessionSinkStoresBotMessages(t *testing.T) {
	ts := newMockTranscript()
	h := newTestHandler(ts)
	sink := &sessionSink{handler: h, sessionID: "sess1"}

	sink.BotMessage(context.Background(), "<p>Hello!</p>")

	msgs := ts.messages("sess1")
	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.SenderBot, msgs[0].Sender)
	assert.Equal(t, "<p>Hello!</p>", msgs[0].Body)
	assert.Equal(t, "webchat_reply", msgs[0].Kind)
	assert.False(t, msgs[0].Timestamp.IsZero())
}

func TestSessionSinkWithoutConnection(t *testing.T) {
	h := newTestHandler(nil)

	sink := &sessionSink{handler: h, sessionID: "nobody-home"}
	assert.NotPanics(t, func() {
		sink.BotMessage(context.Background(), "hi")
		sink.SuggestedReplies(context.Background(), []string{"A", "B"})
		sink.ClearSuggestedReplies(context.Background())
	})
}
