// Package masterdata maintains the item and customer registries: upsert,
// enable/disable lifecycle, hard deletion guarded by referential integrity,
// and the sorted lookups the presentation layer renders from.
package masterdata

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/store"
)

// Service coordinates master-data operations over the shared store.
type Service struct {
	store    *store.Store
	validate *validator.Validate
}

// NewService builds Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, validate: validator.New()}
}

func (s *Service) check(input any) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	return nil
}

// Ref is an (identifier, display name) pair used by the sorted listings.
type Ref struct {
	ID   string
	Name string
}
