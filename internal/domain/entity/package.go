package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItineraryDay un día del itinerario de un paquete.
type ItineraryDay struct {
	Day         int
	Title       string
	Description string
}

// TourPackage paquete turístico publicable del catálogo de un tenant.
// Slug único por root user; Position define el orden manual en el admin.
type TourPackage struct {
	ID                  string
	RootUserID          string
	CategoryID          string
	Name                string
	Slug                string
	Summary             string
	Description         string
	Days                int
	Nights              int
	Price               decimal.Decimal
	PriceBeforeDiscount decimal.Decimal
	Inclusions          []string
	Exclusions          []string
	Itinerary           []ItineraryDay
	Images              []string
	Published           bool
	Highlighted         bool
	Position            int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
