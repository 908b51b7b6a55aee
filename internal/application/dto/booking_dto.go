package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest reserva pública (sin auth): el tenant se deriva del
// paquete referenciado, nunca del body.
type CreateBookingRequest struct {
	PackageID     string    `json:"package_id" validate:"required"`
	RootUserID    string    `json:"root_user_id" validate:"required"` // tenant del sitio público
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone"`
	TravelDate    time.Time `json:"travel_date"`
	GuestCount    int       `json:"guest_count" validate:"min=1"`
	Notes         string    `json:"notes"`
}

// UpdateBookingStatusRequest transición de estado desde el admin.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatusRequest cambio del estado de pago desde el admin.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	PackageID     string          `json:"package_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	TravelDate    time.Time       `json:"travel_date"`
	GuestCount    int             `json:"guest_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
