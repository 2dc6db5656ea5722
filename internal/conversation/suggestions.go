package conversation

// Canonical quick-reply labels.
const (
	OptionPackages     = "Tell me about the mentorship packages"
	OptionWhichProgram = "Which mentorship program is right for me?"
	OptionLocation     = "Where are you located?"
	OptionFees         = "What are the fees?"
	OptionDuration     = "How long is the mentorship?"
	OptionBook         = "Book an appointment"
	OptionCancel       = "Cancel booking"
	OptionBackToMenu   = "Back to menu"
	OptionRegistration = "Registration Process"
	OptionPayment      = "Payment Methods"
	OptionReadWebsite  = "I've read the website now"
)

// Package detail labels.
const (
	OptionBasicDetails   = "Basic Package details"
	OptionPremiumDetails = "Premium Package details"
)

// Program selection labels.
const (
	OptionServiceBased = "Service-based mentorship"
	OptionStarter      = "Starter mentorship program"
	OptionTwoMonths    = "2 months mentorship program"
	OptionChampion     = "Champion mentorship program"
)

// MenuOptions derives the quick-reply set for menu-adjacent prompts from the
// two session flags. "Book an appointment" appears only when no booking is
// made or in flight; "Cancel booking" only while one is in flight; the two
// never appear together.
func MenuOptions(booked, inProgress bool) []string {
	if inProgress {
		return []string{OptionCancel, OptionBackToMenu}
	}
	base := []string{
		OptionPackages,
		OptionWhichProgram,
		OptionLocation,
		OptionFees,
		OptionDuration,
	}
	if booked {
		return base
	}
	return append(base, OptionBook)
}

// bookingAware appends the flag-derived booking option (if any) and a
// trailing "Back to menu" to the given fixed options.
func bookingAware(s Session, options ...string) []string {
	out := append([]string(nil), options...)
	if !s.AppointmentBooked && !s.BookingInProgress {
		out = append(out, OptionBook)
	} else if s.BookingInProgress {
		out = append(out, OptionCancel)
	}
	return append(out, OptionBackToMenu)
}

func programOptions(extra ...string) []string {
	out := []string{OptionServiceBased, OptionStarter, OptionTwoMonths, OptionChampion}
	return append(out, extra...)
}
