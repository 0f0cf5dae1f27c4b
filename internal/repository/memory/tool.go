package memory

import (
	"context"
	"sort"

	"toolrental-checkout/internal/domain"
	"toolrental-checkout/internal/logger"
	"toolrental-checkout/internal/repository"

	"github.com/shopspring/decimal"
)

// tools is the fixed rental catalog. It is never written after init.
var tools = map[string]domain.ToolSpec{
	"LADW": {
		Code:          "LADW",
		Type:          domain.ToolTypeLadder,
		Brand:         "Werner",
		DailyCharge:   decimal.RequireFromString("1.99"),
		WeekendCharge: true,
		HolidayCharge: false,
	},
	"CHNS": {
		Code:          "CHNS",
		Type:          domain.ToolTypeChainsaw,
		Brand:         "Stihl",
		DailyCharge:   decimal.RequireFromString("1.49"),
		WeekendCharge: false,
		HolidayCharge: true,
	},
	"JAKR": {
		Code:          "JAKR",
		Type:          domain.ToolTypeJackhammer,
		Brand:         "Ridgid",
		DailyCharge:   decimal.RequireFromString("2.99"),
		WeekendCharge: false,
		HolidayCharge: false,
	},
	"JAKD": {
		Code:          "JAKD",
		Type:          domain.ToolTypeJackhammer,
		Brand:         "DeWalt",
		DailyCharge:   decimal.RequireFromString("2.99"),
		WeekendCharge: false,
		HolidayCharge: false,
	},
}

type toolCatalog struct{}

func NewToolCatalog() repository.ToolCatalog {
	return &toolCatalog{}
}

func (c *toolCatalog) GetByCode(ctx context.Context, code string) (domain.ToolSpec, error) {
	logger.DebugContext(ctx, "→ Catalog lookup", "tool_code", code)
	tool, ok := tools[code]
	if !ok {
		return domain.ToolSpec{}, &domain.UnknownToolError{Code: code}
	}
	return tool, nil
}

func (c *toolCatalog) List(ctx context.Context) ([]domain.ToolSpec, error) {
	list := make([]domain.ToolSpec, 0, len(tools))
	for _, t := range tools {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})
	return list, nil
}
