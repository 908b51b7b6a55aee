package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── TourPackage ───────────────────────────────────────────────────────────────

type ItineraryDayDTO struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreatePackageRequest struct {
	Name                string            `json:"name" validate:"required"`
	CategoryID          string            `json:"category_id"`
	Summary             string            `json:"summary"`
	Description         string            `json:"description"`
	Days                int               `json:"days"`
	Nights              int               `json:"nights"`
	Price               decimal.Decimal   `json:"price"`
	PriceBeforeDiscount decimal.Decimal   `json:"price_before_discount"`
	Inclusions          []string          `json:"inclusions"`
	Exclusions          []string          `json:"exclusions"`
	Itinerary           []ItineraryDayDTO `json:"itinerary"`
	Images              []string          `json:"images"`
	Highlighted         bool              `json:"highlighted"`
}

type UpdatePackageRequest struct {
	Name                *string           `json:"name"`
	CategoryID          *string           `json:"category_id"`
	Summary             *string           `json:"summary"`
	Description         *string           `json:"description"`
	Days                *int              `json:"days"`
	Nights              *int              `json:"nights"`
	Price               *decimal.Decimal  `json:"price"`
	PriceBeforeDiscount *decimal.Decimal  `json:"price_before_discount"`
	Inclusions          []string          `json:"inclusions"`
	Exclusions          []string          `json:"exclusions"`
	Itinerary           []ItineraryDayDTO `json:"itinerary"`
	Images              []string          `json:"images"`
	Published           *bool             `json:"published"`
	Highlighted         *bool             `json:"highlighted"`
}

type PackageResponse struct {
	ID                  string            `json:"id"`
	CategoryID          string            `json:"category_id,omitempty"`
	Name                string            `json:"name"`
	Slug                string            `json:"slug"`
	Summary             string            `json:"summary"`
	Description         string            `json:"description"`
	Days                int               `json:"days"`
	Nights              int               `json:"nights"`
	Price               decimal.Decimal   `json:"price"`
	PriceBeforeDiscount decimal.Decimal   `json:"price_before_discount"`
	Inclusions          []string          `json:"inclusions"`
	Exclusions          []string          `json:"exclusions"`
	Itinerary           []ItineraryDayDTO `json:"itinerary"`
	Images              []string          `json:"images"`
	Published           bool              `json:"published"`
	Highlighted         bool              `json:"highlighted"`
	Position            int               `json:"position"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type PackageListResponse struct {
	Items []PackageResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── Destination ───────────────────────────────────────────────────────────────

type CreateDestinationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Highlighted bool     `json:"highlighted"`
}

type UpdateDestinationRequest struct {
	Name        *string  `json:"name"`
	Country     *string  `json:"country"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Published   *bool    `json:"published"`
	Highlighted *bool    `json:"highlighted"`
}

type DestinationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Published   bool      `json:"published"`
	Highlighted bool      `json:"highlighted"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DestinationListResponse struct {
	Items []DestinationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── Activity ──────────────────────────────────────────────────────────────────

type CreateActivityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
}

type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Difficulty  *string `json:"difficulty"`
	Published   *bool   `json:"published"`
}

type ActivityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Difficulty  string    `json:"difficulty"`
	Published   bool      `json:"published"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Blog ──────────────────────────────────────────────────────────────────────

type CreateBlogRequest struct {
	Title   string   `json:"title" validate:"required"`
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type UpdateBlogRequest struct {
	Title     *string  `json:"title"`
	Author    *string  `json:"author"`
	Content   *string  `json:"content"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

type BlogResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Author      string     `json:"author"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type BlogListResponse struct {
	Items []BlogResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── Testimonial ───────────────────────────────────────────────────────────────

type CreateTestimonialRequest struct {
	Author    string `json:"author" validate:"required"`
	PackageID string `json:"package_id"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Body      string `json:"body"`
}

type UpdateTestimonialRequest struct {
	Author    *string `json:"author"`
	PackageID *string `json:"package_id"`
	Rating    *int    `json:"rating"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

type TestimonialResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	PackageID string    `json:"package_id,omitempty"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TestimonialListResponse struct {
	Items []TestimonialResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── TeamMember ────────────────────────────────────────────────────────────────

type CreateTeamMemberRequest struct {
	Name      string `json:"name" validate:"required"`
	RoleTitle string `json:"role_title"`
	Bio       string `json:"bio"`
	Photo     string `json:"photo"`
}

type UpdateTeamMemberRequest struct {
	Name      *string `json:"name"`
	RoleTitle *string `json:"role_title"`
	Bio       *string `json:"bio"`
	Photo     *string `json:"photo"`
	Published *bool   `json:"published"`
}

type TeamMemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RoleTitle string    `json:"role_title"`
	Bio       string    `json:"bio"`
	Photo     string    `json:"photo"`
	Published bool      `json:"published"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeamListResponse struct {
	Items []TeamMemberResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ── Category ──────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
