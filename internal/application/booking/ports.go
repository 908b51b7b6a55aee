package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherData datos para la representación PDF de una reserva confirmada.
type VoucherData struct {
	BookingCode   string
	SiteName      string
	PackageName   string
	CustomerName  string
	CustomerEmail string
	TravelDate    time.Time
	GuestCount    int
	TotalAmount   decimal.Decimal
	Status        string
	PaymentStatus string
	IssuedAt      time.Time
}

// VoucherGenerator puerto del generador PDF (implementado en infrastructure/pdf).
type VoucherGenerator interface {
	GenerateVoucher(data VoucherData) ([]byte, error)
}
