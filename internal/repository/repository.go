package repository

import (
	"context"

	"toolrental-checkout/internal/domain"
)

// ToolCatalog resolves tool codes to their charging policy.
type ToolCatalog interface {
	GetByCode(ctx context.Context, code string) (domain.ToolSpec, error)
	List(ctx context.Context) ([]domain.ToolSpec, error)
}
