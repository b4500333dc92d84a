package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

type DurationType string

const (
	DurationDaily   DurationType = "daily"
	DurationWeekly  DurationType = "weekly"
	DurationMonthly DurationType = "monthly"
)

var (
	weeklyFactor  = decimal.RequireFromString("0.85")
	monthlyFactor = decimal.RequireFromString("0.75")
)

// RentalPricing is the discount policy for rentals. It never applies to
// cart or quotation prices.
type RentalPricing struct {
	Days             int             `json:"days"`
	DurationType     DurationType    `json:"duration_type"`
	DurationQuantity int             `json:"duration_quantity"`
	DailyPrice       decimal.Decimal `json:"daily_price"`
	Total            decimal.Decimal `json:"total"`
}

// RentalDays counts both the start and end date.
func RentalDays(start, end time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(start)).Hours()/24) + 1
}

// PriceRental derives the duration bracket from the day count and prices it:
// 30+ days bill whole months at 25% off, 7+ days bill started weeks at 15% off.
func PriceRental(dailyPrice decimal.Decimal, start, end time.Time) RentalPricing {
	days := RentalDays(start, end)
	p := RentalPricing{Days: days, DailyPrice: dailyPrice}

	switch {
	case days >= 30:
		months := max(1, days/30)
		p.DurationType = DurationMonthly
		p.DurationQuantity = months
		p.Total = dailyPrice.Mul(decimal.NewFromInt(int64(30 * months))).Mul(monthlyFactor)
	case days >= 7:
		weeks := (days + 6) / 7
		p.DurationType = DurationWeekly
		p.DurationQuantity = weeks
		p.Total = dailyPrice.Mul(decimal.NewFromInt(int64(7 * weeks))).Mul(weeklyFactor)
	default:
		p.DurationType = DurationDaily
		p.DurationQuantity = days
		p.Total = dailyPrice.Mul(decimal.NewFromInt(int64(days)))
	}

	p.Total = p.Total.Round(2)

	return p
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Rental struct {
	ID                  int64           `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	ProductID           int64           `json:"product_id"`
	ProductName         string          `json:"product_name,omitempty"`
	Status              RentalStatus    `json:"status"`
	DurationType        DurationType    `json:"duration_type"`
	DurationQuantity    int             `json:"duration_quantity"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	DailyPrice          decimal.Decimal `json:"daily_price"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	ContactName         string          `json:"contact_name"`
	ContactPhone        string          `json:"contact_phone"`
	DeliveryAddress     string          `json:"delivery_address"`
	DeliveryCity        string          `json:"delivery_city"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	ConfirmedAt         *time.Time      `json:"confirmed_at,omitempty"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`
}

type CreateRentalRequest struct {
	ProductID           int64  `json:"product_id" validate:"required,gt=0"`
	StartDate           string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate             string `json:"end_date" validate:"required,datetime=2006-01-02"`
	ContactName         string `json:"contact_name" validate:"required,max=200"`
	ContactPhone        string `json:"contact_phone" validate:"required,max=20"`
	DeliveryAddress     string `json:"delivery_address" validate:"required"`
	DeliveryCity        string `json:"delivery_city" validate:"required,max=100"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

type UpdateRentalStatusRequest struct {
	Status RentalStatus `json:"status" validate:"required,oneof=pending confirmed active completed cancelled"`
}
