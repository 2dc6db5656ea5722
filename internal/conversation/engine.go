package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dilawarpro/mentorship-chat/internal/observability/metrics"
	"github.com/dilawarpro/mentorship-chat/pkg/logging"
)

// Options tune a single engine instance. Zero values fall back to the
// production pacing; tests inject an immediate clock and disable the trust
// sequence where it would race the scripted inputs.
type Options struct {
	WhatsAppNumber string
	ProgramLabel   string
	WebsiteURL     string

	TypingDelay         time.Duration
	GreetingDelay       time.Duration
	TrustSequenceDelay  time.Duration
	TrustStepInterval   time.Duration
	EnableTrustSequence bool

	// Now supplies the clock for date option generation.
	Now func() time.Time
	// After supplies the clock for delayed effect delivery.
	After func(time.Duration) <-chan time.Time
}

func (o Options) withDefaults() Options {
	if o.WhatsAppNumber == "" {
		o.WhatsAppNumber = "923314041010"
	}
	if o.ProgramLabel == "" {
		o.ProgramLabel = "Mentorship By Dilawar"
	}
	if o.WebsiteURL == "" {
		o.WebsiteURL = "mentorship.dilawarpro.com"
	}
	if o.GreetingDelay == 0 {
		o.GreetingDelay = 500 * time.Millisecond
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.After == nil {
		o.After = time.After
	}
	return o
}

// Engine is the dialogue state machine for one session. Given the current
// step and a user input it selects a handler, mutates the session store and
// enqueues delay-paced effects toward the host sink. It never renders.
type Engine struct {
	store   *Store
	sink    EffectSink
	sched   *scheduler
	opts    Options
	logger  *logging.Logger
	metrics *metrics.ConversationMetrics

	mu sync.Mutex // one turn at a time
}

// NewEngine wires an engine to its session store and host sink.
func NewEngine(store *Store, sink EffectSink, opts Options, logger *logging.Logger, m *metrics.ConversationMetrics) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	opts = opts.withDefaults()
	return &Engine{
		store:   store,
		sink:    sink,
		sched:   newScheduler(store, opts.After),
		opts:    opts,
		logger:  logger,
		metrics: m,
	}
}

// Store exposes the engine's session store to the host boundary.
func (e *Engine) Store() *Store {
	return e.store
}

// Start emits the opening greeting for a fresh session. It is a no-op once
// any history exists, so reconnects never re-greet.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.store.Snapshot().History) > 0 {
		return
	}
	t := &turn{}
	t.say(e.opts.GreetingDelay, greetingMessage())
	e.emitTurn(t, 0)
}

// Submit processes one user turn. Input that trims to empty is ignored.
// Every reachable step has a default branch, so Submit always leaves the
// session on a valid step.
func (e *Engine) Submit(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	step := e.store.Snapshot().CurrentStep
	e.store.appendHistory(SenderUser, text)
	e.metrics.ObserveTurn(step.String())
	e.metrics.ObserveMessage(string(SenderUser))

	t := &turn{}
	switch step {
	case StepGreeting:
		e.handleName(t, text)
	case StepMenu:
		e.handleMenu(t, text)
	case StepWebsiteReading:
		e.handleWebsiteReading(t, text)
	case StepAppointmentInterest:
		e.handleAppointmentInterest(t, text)
	case StepEmail:
		e.handleEmail(t, text)
	case StepWhatsapp:
		e.handleWhatsapp(t, text)
	case StepDate:
		e.handleDate(t, text)
	case StepTime:
		e.handleTime(t, text)
	case StepConfirmation:
		e.handleConfirmation(t, text)
	default:
		e.generalResponse(t)
	}

	e.logger.Debug("turn processed",
		"step", step.String(),
		"next_step", e.store.Snapshot().CurrentStep.String(),
	)
	e.emitTurn(t, e.opts.TypingDelay)
}

// Drain blocks until all scheduled effect chains have finished.
func (e *Engine) Drain() {
	e.sched.wait()
}

// emitTurn hands the turn's effects to the scheduler. The lead delay
// simulates the bot "typing" before its first message.
func (e *Engine) emitTurn(t *turn, lead time.Duration) {
	if len(t.effects) == 0 {
		return
	}
	steps := make([]chainStep, 0, len(t.effects))
	for i, eff := range t.effects {
		eff := eff
		delay := eff.Delay
		if i == 0 {
			delay += lead
		}
		steps = append(steps, chainStep{delay: delay, run: func(ctx context.Context) {
			e.deliver(ctx, eff)
		}})
	}
	// Chains outlive the submitting request; cancellation is driven by the
	// session's step generation, not the caller's context.
	e.sched.runChain(context.Background(), e.store.Generation(), steps)
}

// deliver pushes one effect to the host sink and mirrors bot messages into
// the session history.
func (e *Engine) deliver(ctx context.Context, eff Effect) {
	switch eff.Kind {
	case EffectBotMessage:
		e.store.appendHistory(SenderBot, eff.HTML)
		e.metrics.ObserveMessage(string(SenderBot))
		e.sink.BotMessage(ctx, eff.HTML)
	case EffectSuggestedReplies:
		e.sink.SuggestedReplies(ctx, eff.Options)
	case EffectClearSuggestedReplies:
		e.sink.ClearSuggestedReplies(ctx)
	}
}

// handleName captures the visitor's name, moves to the menu and kicks off
// the scripted trust sequence.
func (e *Engine) handleName(t *turn, name string) {
	e.store.Apply(func(s *Session) {
		s.UserName = name
		s.CurrentStep = StepMenu
	})

	t.say(0, niceToMeetYou(name))
	t.say(2*time.Second, programListMessage())
	t.suggest(0, programOptions(OptionRegistration, OptionPayment)...)

	if e.opts.EnableTrustSequence {
		e.scheduleTrustSequence(context.Background())
	}
}

// scheduleTrustSequence queues the unprompted trust messages, ending with
// the website-reading prompt. The chain dies as soon as the session leaves
// the menu, so a visitor who jumps into booking is not chased by stale
// timers.
func (e *Engine) scheduleTrustSequence(ctx context.Context) {
	msgs := trustMessages()
	steps := make([]chainStep, 0, len(msgs)+1)
	for i, msg := range msgs {
		msg := msg
		delay := e.opts.TrustStepInterval
		if i == 0 {
			delay = e.opts.TrustSequenceDelay
		}
		steps = append(steps, chainStep{delay: delay, run: func(ctx context.Context) {
			e.deliver(ctx, Effect{Kind: EffectBotMessage, HTML: msg})
		}})
	}
	steps = append(steps, chainStep{delay: 2 * time.Second, run: func(ctx context.Context) {
		var name string
		e.store.Apply(func(s *Session) {
			name = s.UserName
			s.CurrentStep = StepWebsiteReading
		})
		e.deliver(ctx, Effect{Kind: EffectBotMessage, HTML: askWebsiteReading(name)})
		e.deliver(ctx, Effect{Kind: EffectSuggestedReplies, Options: []string{
			"Yes, I've read everything",
			"No, I haven't read everything yet",
		}})
	}})
	e.sched.runChain(ctx, e.store.Generation(), steps)
}

// menuRule pairs an input predicate with its handler. Rules are evaluated
// in order; the first match wins.
type menuRule struct {
	match  func(string) bool
	handle func(e *Engine, t *turn, s Session)
}

func containsAny(subs ...string) func(string) bool {
	return func(in string) bool {
		for _, sub := range subs {
			if strings.Contains(in, sub) {
				return true
			}
		}
		return false
	}
}

var menuRules = []menuRule{
	{containsAny("registration process"), (*Engine).showRegistrationProcess},
	{containsAny("payment method"), (*Engine).showPaymentMethods},
	{containsAny("i've read the website now"), (*Engine).showProgramSelection},
	{containsAny("cancel booking"), (*Engine).cancelBooking},
	{containsAny("which mentorship", "right for me"), (*Engine).whichProgram},
	{containsAny("service-based"), (*Engine).serviceBasedProgram},
	{containsAny("starter mentorship"), (*Engine).starterProgram},
	{containsAny("2 months"), (*Engine).twoMonthsProgram},
	{containsAny("champion"), (*Engine).championProgram},
	{containsAny("packages", "tell me about"), (*Engine).packages},
	{containsAny("located", "where"), (*Engine).location},
	{containsAny("fees", "cost", "price"), (*Engine).fees},
	{containsAny("duration", "how long"), (*Engine).duration},
	{containsAny("book", "appointment"), func(e *Engine, t *turn, _ Session) { e.startBooking(t) }},
	{containsAny("back to menu"), (*Engine).backToMenu},
	{containsAny("basic package"), (*Engine).basicPackage},
	{containsAny("premium package"), (*Engine).premiumPackage},
}

func (e *Engine) handleMenu(t *turn, selection string) {
	lowered := strings.ToLower(selection)
	s := e.store.Snapshot()
	for _, rule := range menuRules {
		if rule.match(lowered) {
			rule.handle(e, t, s)
			return
		}
	}
	e.generalResponse(t)
}

func (e *Engine) handleWebsiteReading(t *turn, response string) {
	if strings.Contains(strings.ToLower(response), "yes") {
		e.store.Apply(func(s *Session) { s.CurrentStep = StepMenu })
		t.say(0, whichProgramToJoin())
		t.say(2*time.Second, programListMessage())
		t.suggest(0, programOptions(OptionRegistration, OptionPayment)...)
		return
	}

	e.store.Apply(func(s *Session) { s.CurrentStep = StepMenu })
	t.say(0, readWebsiteFirst(e.opts.WebsiteURL))
	t.suggest(2*time.Second,
		OptionPackages, OptionWhichProgram, OptionLocation,
		OptionFees, OptionDuration, OptionReadWebsite,
	)
}

func (e *Engine) handleAppointmentInterest(t *turn, response string) {
	if strings.Contains(strings.ToLower(response), "yes") {
		e.startBooking(t)
		return
	}

	e.store.Apply(func(s *Session) { s.CurrentStep = StepMenu })
	t.say(0, noBookingInterest())
	t.suggest(0, MenuOptions(false, false)...)
}

// generalResponse is the fallback for anything no rule recognised. It never
// errors; the visitor always gets a next action.
func (e *Engine) generalResponse(t *turn) {
	e.metrics.ObserveFallback()
	e.store.Apply(func(s *Session) { s.CurrentStep = StepMenu })
	s := e.store.Snapshot()
	t.say(0, fallbackMessage())
	t.suggest(0, MenuOptions(s.AppointmentBooked, s.BookingInProgress)...)
}

func (e *Engine) showRegistrationProcess(t *turn, _ Session) {
	t.say(0, registrationProcessMessage())
	t.suggest(2*time.Second, OptionBook, OptionPayment, OptionWhichProgram, OptionBackToMenu)
}

func (e *Engine) showPaymentMethods(t *turn, _ Session) {
	t.say(0, paymentMethodsMessage())
	t.suggest(2*time.Second, OptionBook, OptionRegistration, OptionWhichProgram, OptionBackToMenu)
}

func (e *Engine) showProgramSelection(t *turn, _ Session) {
	t.say(0, whichProgramToJoin())
	t.say(2*time.Second, programListMessage())
	t.suggest(0, programOptions()...)
}

func (e *Engine) cancelBooking(t *turn, s Session) {
	e.metrics.ObserveBooking("cancelled")
	e.store.Apply(func(s *Session) {
		s.BookingInProgress = false
		s.CurrentStep = StepMenu
	})
	t.say(0, bookingCancelled(s.UserName))
	t.suggest(0, MenuOptions(s.AppointmentBooked, false)...)
}

func (e *Engine) whichProgram(t *turn, _ Session) {
	t.say(0, whichProgramPrompt())
	t.say(2*time.Second, programListMessage())
	t.suggest(0, programOptions(OptionBackToMenu)...)
}

func (e *Engine) serviceBasedProgram(t *turn, _ Session) {
	t.say(0, serviceBasedDetail())
	t.say(3*time.Second, championUpsellLead())
	e.suggestChampion(t, 2*time.Second)
}

func (e *Engine) starterProgram(t *turn, _ Session) {
	t.say(0, starterDetail())
	t.say(3*time.Second, championUpsellLead())
	e.suggestChampion(t, 2*time.Second)
}

func (e *Engine) twoMonthsProgram(t *turn, _ Session) {
	t.say(0, twoMonthsDetail())
	t.say(3*time.Second, championUpsellLead())
	e.suggestChampion(t, 2*time.Second)
}

func (e *Engine) championProgram(t *turn, _ Session) {
	t.say(0, championDetail())
	e.suggestChampion(t, 3*time.Second)
}

// suggestChampion appends the Champion program pitch to the current turn.
func (e *Engine) suggestChampion(t *turn, lead time.Duration) {
	t.say(lead, championPitch())
	t.say(2*time.Second, championBenefits())
	t.say(8*time.Second, championClosing())
	t.suggest(0, OptionBook, OptionRegistration, OptionPayment, OptionWhichProgram, OptionBackToMenu)
}

func (e *Engine) packages(t *turn, s Session) {
	t.say(0, packagesOverview(s.UserName))
	switch {
	case s.AppointmentBooked:
		t.suggest(0, OptionBasicDetails, OptionPremiumDetails, OptionWhichProgram, OptionBackToMenu)
	case s.BookingInProgress:
		t.suggest(0, OptionBasicDetails, OptionPremiumDetails, OptionCancel, OptionBackToMenu)
	default:
		t.suggest(0, OptionBasicDetails, OptionPremiumDetails, OptionWhichProgram, OptionBook, OptionBackToMenu)
	}
}

func (e *Engine) location(t *turn, s Session) {
	t.say(0, locationMessage())
	t.suggest(0, bookingAware(s)...)
}

func (e *Engine) fees(t *turn, s Session) {
	t.say(0, feesMessage())
	options := []string{OptionPayment}
	if !s.AppointmentBooked && !s.BookingInProgress {
		options = append(options, OptionBook)
	} else if s.BookingInProgress {
		options = append(options, OptionCancel)
	}
	options = append(options, OptionWhichProgram, OptionBackToMenu)
	t.suggest(0, options...)
}

func (e *Engine) duration(t *turn, s Session) {
	t.say(0, durationMessage())
	t.suggest(0, bookingAware(s)...)
}

func (e *Engine) backToMenu(t *turn, s Session) {
	if s.BookingInProgress {
		e.store.Apply(func(s *Session) { s.BookingInProgress = false })
	}
	t.say(0, backToMenuMessage(s.UserName))
	t.suggest(0, MenuOptions(s.AppointmentBooked, false)...)
}

func (e *Engine) basicPackage(t *turn, s Session) {
	t.say(0, basicPackageDetail())
	t.suggest(0, bookingAware(s, OptionPremiumDetails)...)
}

func (e *Engine) premiumPackage(t *turn, s Session) {
	t.say(0, premiumPackageDetail())
	t.suggest(0, bookingAware(s, OptionBasicDetails)...)
}
