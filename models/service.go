package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PricingType string

const (
	PricingFixed  PricingType = "fixed"
	PricingHourly PricingType = "hourly"
)

// ServiceReview is one of the recent reviews embedded in a service listing.
type ServiceReview struct {
	ID            int64     `json:"id"`
	CustomerEmail string    `json:"customer_email"`
	CustomerName  string    `json:"customer_name"`
	Rating        *int      `json:"rating"`
	Review        string    `json:"review"`
	CreatedAt     time.Time `json:"created_at"`
}

// Service is a provider-owned offering. Read-only to customers.
type Service struct {
	ID               int64           `json:"id"`
	ProviderID       int64           `json:"provider"`
	ProviderEmail    string          `json:"provider_email"`
	ProviderName     string          `json:"provider_name"`
	ProviderVerified bool            `json:"provider_verified"`
	CategoryID       int64           `json:"category"`
	CategoryName     string          `json:"category_name"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description"`
	BasePrice        decimal.Decimal `json:"base_price"`
	PricingType      PricingType     `json:"pricing_type"`
	Location         string          `json:"location,omitempty"`
	IsActive         bool            `json:"is_active"`
	AverageRating    *float64        `json:"average_rating"`
	TotalReviews     int             `json:"total_reviews"`
	Reviews          []ServiceReview `json:"reviews,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Category groups services for browsing.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// ServiceInput is the body of a provider's new listing, forwarded to
// /services/services/create/.
type ServiceInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	PricingType PricingType     `json:"pricing_type" binding:"required,oneof=fixed hourly"`
	Location    string          `json:"location,omitempty"`
	CategoryID  int64           `json:"category" binding:"required"`
}
