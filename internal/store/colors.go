package store

import (
	"fmt"
	"strings"

	"github.com/tallybook/tallybook/internal/shared"
)

// SetCategoryColor assigns a display color to a category. Display data only,
// no business invariant.
func (s *Store) SetCategoryColor(category, hexColor string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: empty category", shared.ErrValidation)
	}
	s.data.CategoryColors[category] = hexColor
	return s.Persist()
}

// CategoryColor looks up the color assigned to a category.
func (s *Store) CategoryColor(category string) (string, bool) {
	c, ok := s.data.CategoryColors[category]
	return c, ok
}

// CategoryColors returns a copy of the whole color map.
func (s *Store) CategoryColors() map[string]string {
	out := make(map[string]string, len(s.data.CategoryColors))
	for k, v := range s.data.CategoryColors {
		out[k] = v
	}
	return out
}
