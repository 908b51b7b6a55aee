package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Estados de pago de una reserva.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Booking reserva transaccional de un paquete. A diferencia del contenido de
// catálogo, almacena company_id y tenant_id además de root_user_id.
type Booking struct {
	ID            string
	BookingID     string // código humano globalmente único, ej: BK-4F7A21C9
	RootUserID    string
	CompanyID     string
	TenantID      string
	PackageID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TravelDate    time.Time
	GuestCount    int
	TotalAmount   decimal.Decimal
	Status        string
	PaymentStatus string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// bookingTransitions transiciones de estado permitidas. Los estados
// terminales (cancelled, completed) no tienen salida.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// CanTransition informa si la reserva puede pasar del estado actual a next.
func (b *Booking) CanTransition(next string) bool {
	for _, allowed := range bookingTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidPaymentStatus informa si s es un estado de pago conocido.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// ValidBookingStatus informa si s es un estado de reserva conocido.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}
