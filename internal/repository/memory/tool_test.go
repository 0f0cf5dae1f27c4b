package memory

import (
	"context"
	"testing"

	"toolrental-checkout/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCatalog_GetByCode(t *testing.T) {
	catalog := NewToolCatalog()
	ctx := context.Background()

	tests := []struct {
		code          string
		toolType      domain.ToolType
		brand         string
		dailyCharge   string
		weekendCharge bool
		holidayCharge bool
	}{
		{"LADW", domain.ToolTypeLadder, "Werner", "1.99", true, false},
		{"CHNS", domain.ToolTypeChainsaw, "Stihl", "1.49", false, true},
		{"JAKR", domain.ToolTypeJackhammer, "Ridgid", "2.99", false, false},
		{"JAKD", domain.ToolTypeJackhammer, "DeWalt", "2.99", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tool, err := catalog.GetByCode(ctx, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.code, tool.Code)
			assert.Equal(t, tt.toolType, tool.Type)
			assert.Equal(t, tt.brand, tool.Brand)
			assert.Equal(t, tt.dailyCharge, tool.DailyCharge.StringFixed(2))
			assert.Equal(t, tt.weekendCharge, tool.WeekendCharge)
			assert.Equal(t, tt.holidayCharge, tool.HolidayCharge)
		})
	}

	t.Run("Unknown code", func(t *testing.T) {
		_, err := catalog.GetByCode(ctx, "ladw")
		assert.ErrorIs(t, err, domain.ErrUnknownTool)
		assert.Contains(t, err.Error(), `"ladw"`)
	})
}

func TestToolCatalog_List(t *testing.T) {
	tools, err := NewStore().List(context.Background())
	require.NoError(t, err)

	codes := make([]string, 0, len(tools))
	for _, tool := range tools {
		codes = append(codes, tool.Code)
	}
	assert.Equal(t, []string{"CHNS", "JAKD", "JAKR", "LADW"}, codes)
}
