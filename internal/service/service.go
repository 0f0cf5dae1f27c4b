package service

import (
	"context"

	"toolrental-checkout/internal/domain"
)

type RentalService interface {
	// Checkout prices a rental and returns the resulting agreement. It has no
	// side effects: identical requests always yield identical agreements.
	Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error)
	ListTools(ctx context.Context) ([]domain.ToolSpec, error)
}
