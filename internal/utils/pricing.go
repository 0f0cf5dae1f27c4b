package utils

import (
	"fmt"

	"toolrental-checkout/internal/domain"

	"github.com/shopspring/decimal"
)

const centPlaces = 2

// ChargeDays returns the rental days left to bill after removing the holidays
// and weekend days the tool does not charge for.
func ChargeDays(rentalDays, holidays, weekendDays int, tool domain.ToolSpec) (int, error) {
	days := rentalDays
	if !tool.HolidayCharge {
		days -= holidays
	}
	if !tool.WeekendCharge {
		days -= weekendDays
	}
	if days < 0 {
		return 0, fmt.Errorf("%w: %d rental days, %d holidays, %d weekend days", domain.ErrNegativeChargeDays, rentalDays, holidays, weekendDays)
	}
	return days, nil
}

// CalculateCharges computes the pre-discount charge, discount and final charge.
//
// Both products are taken in single precision, matching the published rate
// tables. Each product is converted to its shortest round-trip decimal, which
// is then rounded half-down to cents.
// The final charge is the exact difference of the two rounded amounts.
func CalculateCharges(daysCharged int, dailyCharge decimal.Decimal, discountPercent int) domain.RentalCharges {
	rate := float32(dailyCharge.InexactFloat64())
	gross := float32(float32(daysCharged) * rate)
	preDiscount := RoundHalfDown(decimal.NewFromFloat(float64(gross)), centPlaces)

	fraction := float32(float32(discountPercent) * float32(0.01))
	discount := float32(fraction * float32(preDiscount.InexactFloat64()))
	discountAmount := RoundHalfDown(decimal.NewFromFloat(float64(discount)), centPlaces)

	return domain.RentalCharges{
		DaysCharged:       daysCharged,
		PreDiscountCharge: preDiscount,
		DiscountAmount:    discountAmount,
		FinalCharge:       preDiscount.Sub(discountAmount),
	}
}

// RoundHalfDown rounds d to places decimal places, resolving exact ties toward zero.
func RoundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	truncated := d.Truncate(places)
	half := decimal.New(5, -(places + 1))
	if d.Sub(truncated).Abs().Equal(half) {
		return truncated
	}
	return d.Round(places)
}
