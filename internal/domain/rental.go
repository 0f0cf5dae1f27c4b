package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RentalRequest is the input of a checkout.
type RentalRequest struct {
	ToolCode        string     `json:"tool_code"`
	RentalDays      int        `json:"rental_days"`
	DiscountPercent int        `json:"discount_percent"`
	CheckoutDate    civil.Date `json:"checkout_date"`
}

// RentalCharges holds the billed day count and the amounts derived from it.
// FinalCharge is always PreDiscountCharge minus DiscountAmount.
type RentalCharges struct {
	DaysCharged       int             `json:"days_charged"`
	PreDiscountCharge decimal.Decimal `json:"pre_discount_charge"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	FinalCharge       decimal.Decimal `json:"final_charge"`
}

type RentalAgreement struct {
	AgreementID     string     `json:"agreement_id"`
	ToolCode        string     `json:"tool_code"`
	ToolType        ToolType   `json:"tool_type"`
	ToolBrand       string     `json:"tool_brand"`
	RentalDays      int        `json:"rental_days"`
	DiscountPercent int        `json:"discount_percent"`
	CheckoutDate    civil.Date `json:"checkout_date"`
	DueDate         civil.Date `json:"due_date"`
	// Policy snapshot taken from the catalog at checkout time.
	DailyCharge   decimal.Decimal `json:"daily_charge"`
	WeekendCharge bool            `json:"weekend_charge"`
	HolidayCharge bool            `json:"holiday_charge"`
	// Exclusion counts actually applied; zero when the tool charges for that category.
	HolidayCount int `json:"holiday_count"`
	WeekendCount int `json:"weekend_count"`
	RentalCharges
}

// NewRentalAgreement assembles an agreement from already computed parts.
func NewRentalAgreement(id string, req RentalRequest, tool ToolSpec, dueDate civil.Date, holidays, weekends int, charges RentalCharges) *RentalAgreement {
	return &RentalAgreement{
		AgreementID:     id,
		ToolCode:        tool.Code,
		ToolType:        tool.Type,
		ToolBrand:       tool.Brand,
		RentalDays:      req.RentalDays,
		DiscountPercent: req.DiscountPercent,
		CheckoutDate:    req.CheckoutDate,
		DueDate:         dueDate,
		DailyCharge:     tool.DailyCharge,
		WeekendCharge:   tool.WeekendCharge,
		HolidayCharge:   tool.HolidayCharge,
		HolidayCount:    holidays,
		WeekendCount:    weekends,
		RentalCharges:   charges,
	}
}
