package masterdata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// ItemInput carries the fields accepted by UpsertItem. Identity and text
// fields are trimmed before validation.
type ItemInput struct {
	SKU       string `validate:"required"`
	Name      string `validate:"required"`
	UnitPrice int64  `validate:"min=0"`
	Category  string `validate:"required"`
	Stock     int64  `validate:"min=0"`
}

// UpsertItem creates or updates an item. Creation sets disabled=false and both
// timestamps; update preserves created_at and bumps updated_at. The sku is
// immutable once created (it is the registry key).
func (s *Service) UpsertItem(in ItemInput) error {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if err := s.check(in); err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}

	ds := s.store.Data()
	ts := s.store.Now()
	if it, ok := ds.Items[in.SKU]; ok {
		it.Name = in.Name
		it.UnitPrice = in.UnitPrice
		it.Category = in.Category
		it.Stock = in.Stock
		it.UpdatedAt = ts
	} else {
		ds.Items[in.SKU] = &snapshot.Item{
			Name:      in.Name,
			UnitPrice: in.UnitPrice,
			Category:  in.Category,
			Stock:     in.Stock,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
	}
	return s.store.Persist()
}

// Item looks up one item by sku.
func (s *Service) Item(sku string) (*snapshot.Item, error) {
	it, ok := s.store.Data().Items[sku]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", sku, shared.ErrNotFound)
	}
	return it, nil
}

// DisableItem marks the item inactive without removing it.
func (s *Service) DisableItem(sku string) error {
	return s.setItemDisabled(sku, true)
}

// EnableItem reactivates a disabled item.
func (s *Service) EnableItem(sku string) error {
	return s.setItemDisabled(sku, false)
}

func (s *Service) setItemDisabled(sku string, disabled bool) error {
	it, err := s.Item(sku)
	if err != nil {
		return err
	}
	it.Disabled = disabled
	it.UpdatedAt = s.store.Now()
	return s.store.Persist()
}

// DeleteItem physically removes an item. It refuses while any non-deleted
// ledger record still references the sku, unless allowOrphan is set, in which
// case those records keep a dangling sku. This is the only destructive
// master-data operation; prefer DisableItem.
func (s *Service) DeleteItem(sku string, allowOrphan bool) error {
	ds := s.store.Data()
	if !allowOrphan && itemReferenced(ds, sku) {
		return fmt.Errorf("item %s: %w", sku, shared.ErrReferenced)
	}
	if _, ok := ds.Items[sku]; !ok {
		return nil
	}
	delete(ds.Items, sku)
	return s.store.Persist()
}

func itemReferenced(ds *snapshot.Dataset, sku string) bool {
	for _, r := range ds.InventoryHistory {
		if r.SKU == sku && !r.Deleted {
			return true
		}
	}
	for _, r := range ds.Sales {
		if r.SKU == sku && !r.Deleted {
			return true
		}
	}
	return false
}

// Categories lists the distinct non-blank categories in use, sorted. Disabled
// items are skipped unless includeDisabled is set.
func (s *Service) Categories(includeDisabled bool) []string {
	seen := map[string]struct{}{}
	for _, it := range s.store.Data().Items {
		if !includeDisabled && it.Disabled {
			continue
		}
		if it.Category == "" {
			continue
		}
		seen[it.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ItemsByCategory lists (sku, name) pairs in a category sorted by display
// name, sku as tie-break so rendering is deterministic.
func (s *Service) ItemsByCategory(category string, includeDisabled bool) []Ref {
	out := []Ref{}
	for sku, it := range s.store.Data().Items {
		if it.Category != category {
			continue
		}
		if !includeDisabled && it.Disabled {
			continue
		}
		out = append(out, Ref{ID: sku, Name: it.Name})
	}
	sortRefs(out)
	return out
}

func sortRefs(refs []Ref) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].ID < refs[j].ID
	})
}
