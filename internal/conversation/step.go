package conversation

// Step identifies the active state of a chat session. Exactly one step is
// active at a time and every inbound message is dispatched against it.
type Step string

const (
	StepGreeting            Step = "greeting"
	StepMenu                Step = "menu"
	StepWebsiteReading      Step = "website_reading"
	StepAppointmentInterest Step = "appointment_interest"
	StepEmail               Step = "email"
	StepWhatsapp            Step = "whatsapp"
	StepDate                Step = "date"
	StepTime                Step = "time"
	StepConfirmation        Step = "confirmation"
)

// Valid reports whether s is one of the enumerated steps.
func (s Step) Valid() bool {
	switch s {
	case StepGreeting, StepMenu, StepWebsiteReading, StepAppointmentInterest,
		StepEmail, StepWhatsapp, StepDate, StepTime, StepConfirmation:
		return true
	}
	return false
}

func (s Step) String() string {
	return string(s)
}
