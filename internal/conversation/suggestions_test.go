package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuOptionsDerivation(t *testing.T) {
	fresh := MenuOptions(false, false)
	booked := MenuOptions(true, false)
	inProgress := MenuOptions(false, true)

	assert.Contains(t, fresh, OptionBook)
	assert.NotContains(t, fresh, OptionCancel)

	assert.NotContains(t, booked, OptionBook)
	assert.NotContains(t, booked, OptionCancel)

	assert.Contains(t, inProgress, OptionCancel)
	assert.NotContains(t, inProgress, OptionBook)

	// The three reachable flag combinations map to distinct sets.
	assert.NotEqual(t, fresh, booked)
	assert.NotEqual(t, fresh, inProgress)
	assert.NotEqual(t, booked, inProgress)
}

func TestMenuOptionsIsPure(t *testing.T) {
	assert.Equal(t, MenuOptions(false, true), MenuOptions(false, true))
	assert.Equal(t, MenuOptions(true, false), MenuOptions(true, false))
}

func TestBookingAware(t *testing.T) {
	free := bookingAware(Session{}, OptionPremiumDetails)
	assert.Equal(t, []string{OptionPremiumDetails, OptionBook, OptionBackToMenu}, free)

	inProgress := bookingAware(Session{BookingInProgress: true})
	assert.Equal(t, []string{OptionCancel, OptionBackToMenu}, inProgress)

	booked := bookingAware(Session{AppointmentBooked: true})
	assert.Equal(t, []string{OptionBackToMenu}, booked)
}
