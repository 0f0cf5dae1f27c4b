package domain

import "github.com/shopspring/decimal"

type ToolType string

const (
	ToolTypeLadder     ToolType = "Ladder"
	ToolTypeChainsaw   ToolType = "Chainsaw"
	ToolTypeJackhammer ToolType = "Jackhammer"
)

// ToolSpec describes a rentable tool and its charging policy.
// WeekendCharge and HolidayCharge report whether those days are billed.
type ToolSpec struct {
	Code          string          `json:"code" yaml:"code"`
	Type          ToolType        `json:"type" yaml:"type"`
	Brand         string          `json:"brand" yaml:"brand"`
	DailyCharge   decimal.Decimal `json:"daily_charge" yaml:"daily_charge"`
	WeekendCharge bool            `json:"weekend_charge" yaml:"weekend_charge"`
	HolidayCharge bool            `json:"holiday_charge" yaml:"holiday_charge"`
}
