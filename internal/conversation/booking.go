package conversation

import (
	"strings"
	"time"
)

// startBooking enters the booking sub-flow. Quick replies are cleared while
// the visitor types free text.
func (e *Engine) startBooking(t *turn) {
	var name string
	e.store.Apply(func(s *Session) {
		name = s.UserName
		s.CurrentStep = StepEmail
		s.BookingInProgress = true
	})
	t.say(0, bookingIntro(name))
	t.clearSuggestions()
}

// handleEmail validates and stores the visitor's email. A rejected input
// reprompts without advancing the step or consuming the turn.
func (e *Engine) handleEmail(t *turn, email string) {
	if !ValidEmail(email) {
		e.metrics.ObserveValidationFailure("email")
		t.say(0, invalidEmail())
		t.clearSuggestions()
		return
	}

	e.store.Apply(func(s *Session) {
		s.UserEmail = email
		s.CurrentStep = StepWhatsapp
	})
	t.say(0, askWhatsapp())
	t.clearSuggestions()
}

// handleWhatsapp validates and stores the WhatsApp number, then offers the
// next seven days as date options.
func (e *Engine) handleWhatsapp(t *turn, whatsapp string) {
	if !ValidPhone(whatsapp) {
		e.metrics.ObserveValidationFailure("whatsapp")
		t.say(0, invalidPhone())
		t.clearSuggestions()
		return
	}

	e.store.Apply(func(s *Session) {
		s.UserWhatsapp = whatsapp
		s.CurrentStep = StepDate
	})
	t.say(0, askDate())
	t.suggest(0, dateOptions(e.opts.Now(), 7)...)
}

func (e *Engine) handleDate(t *turn, date string) {
	e.store.Apply(func(s *Session) {
		s.AppointmentDate = date
		s.CurrentStep = StepTime
	})
	t.say(0, askTime(date))
	t.suggest(0, timeSlots()...)
}

func (e *Engine) handleTime(t *turn, slot string) {
	var snapshot Session
	e.store.Apply(func(s *Session) {
		s.AppointmentTime = slot
		s.CurrentStep = StepConfirmation
		snapshot = *s
	})
	t.say(0, confirmationSummary(snapshot))
	t.suggest(0, "Yes, confirm appointment", "No, make changes")
}

// handleConfirmation completes or restarts the booking. The "yes" substring
// match is deliberately loose free-text recognition, same as the rest of the
// vocabulary.
func (e *Engine) handleConfirmation(t *turn, response string) {
	if !strings.Contains(strings.ToLower(response), "yes") {
		e.metrics.ObserveBooking("restarted")
		t.say(0, bookingRestart())
		e.startBooking(t)
		return
	}

	var snapshot Session
	e.store.Apply(func(s *Session) {
		s.AppointmentBooked = true
		s.BookingInProgress = false
		s.CurrentStep = StepMenu
		snapshot = *s
	})
	e.metrics.ObserveBooking("confirmed")
	e.logger.Info("appointment booked",
		"date", snapshot.AppointmentDate,
		"time", snapshot.AppointmentTime,
	)

	link := WhatsAppLink(e.opts.WhatsAppNumber, e.opts.ProgramLabel, snapshot)
	t.say(0, bookingConfirmed())
	t.say(time.Second, appointmentSummary(snapshot, e.opts.ProgramLabel, link))
	t.say(time.Second, postBookingThanks(e.opts.ProgramLabel))
	t.suggest(0,
		OptionPackages,
		OptionWhichProgram,
		OptionRegistration,
		OptionPayment,
		OptionLocation,
		OptionFees,
		OptionDuration,
		"No, that's all for now",
	)
}
