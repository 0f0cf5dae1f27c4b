package memory

import "toolrental-checkout/internal/repository"

type Store struct {
	repository.ToolCatalog
}

func NewStore() *Store {
	return &Store{
		ToolCatalog: NewToolCatalog(),
	}
}
