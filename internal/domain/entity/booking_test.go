package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// Transiciones permitidas: pending → confirmed/cancelled,
// confirmed → completed/cancelled. Los terminales no tienen salida.
func TestBooking_CanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.BookingPending, entity.BookingConfirmed, true},
		{entity.BookingPending, entity.BookingCancelled, true},
		{entity.BookingPending, entity.BookingCompleted, false},
		{entity.BookingConfirmed, entity.BookingCompleted, true},
		{entity.BookingConfirmed, entity.BookingCancelled, true},
		{entity.BookingConfirmed, entity.BookingPending, false},
		{entity.BookingCancelled, entity.BookingPending, false},
		{entity.BookingCancelled, entity.BookingConfirmed, false},
		{entity.BookingCompleted, entity.BookingCancelled, false},
		{entity.BookingPending, "estado-inventado", false},
	}
	for _, c := range cases {
		b := &entity.Booking{Status: c.from}
		assert.Equal(t, c.want, b.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, entity.ValidBookingStatus(entity.BookingPending))
	assert.True(t, entity.ValidBookingStatus(entity.BookingCompleted))
	assert.False(t, entity.ValidBookingStatus("archived"))
	assert.False(t, entity.ValidBookingStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	assert.True(t, entity.ValidPaymentStatus(entity.PaymentPaid))
	assert.True(t, entity.ValidPaymentStatus(entity.PaymentRefunded))
	assert.False(t, entity.ValidPaymentStatus("chargeback"))
}
