package conversation

import (
	"context"
	"time"
)

// EffectKind tags the variant of an outbound effect.
type EffectKind int

const (
	EffectBotMessage EffectKind = iota
	EffectSuggestedReplies
	EffectClearSuggestedReplies
)

// Effect is one unit of output the engine hands to the host for rendering.
// Delay is relative to the previous effect of the same turn.
type Effect struct {
	Kind    EffectKind
	HTML    string
	Options []string
	Delay   time.Duration
}

// EffectSink is the host UI boundary. Implementations only render/append;
// they carry no decision logic.
type EffectSink interface {
	BotMessage(ctx context.Context, html string)
	SuggestedReplies(ctx context.Context, options []string)
	ClearSuggestedReplies(ctx context.Context)
}

// turn accumulates the ordered effects of a single handler invocation.
type turn struct {
	effects []Effect
}

func (t *turn) say(delay time.Duration, html string) {
	t.effects = append(t.effects, Effect{Kind: EffectBotMessage, HTML: html, Delay: delay})
}

func (t *turn) suggest(delay time.Duration, options ...string) {
	t.effects = append(t.effects, Effect{Kind: EffectSuggestedReplies, Options: options, Delay: delay})
}

func (t *turn) clearSuggestions() {
	t.effects = append(t.effects, Effect{Kind: EffectClearSuggestedReplies})
}
