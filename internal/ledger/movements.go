package ledger

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// Apply posts one inventory movement and returns the new record id.
//
// IN adds qty, OUT subtracts (rejecting insufficient stock), ADJUST sets the
// absolute stock level. The record snapshots the item's current unit price,
// the resulting stock, and a freshly recomputed whole-inventory valuation.
// All validation happens before any state changes.
func (s *Service) Apply(action Action, sku string, qty int64, note string) (string, error) {
	ds := s.store.Data()
	it, err := s.checkMovement(ds, action, sku, qty)
	if err != nil {
		return "", err
	}

	before := it.Stock
	var after, amount int64
	switch action {
	case ActionIn:
		after = before + qty
		amount = qty * it.UnitPrice
	case ActionOut:
		after = before - qty
		amount = -qty * it.UnitPrice
	case ActionAdjust:
		after = qty
		amount = (after - before) * it.UnitPrice
	}

	ts := s.store.Now()
	it.Stock = after
	it.UpdatedAt = ts

	rec := &snapshot.Movement{
		ID:                  shared.NewID("IH"),
		TS:                  ts,
		Action:              string(action),
		SKU:                 sku,
		Qty:                 qty,
		UnitPrice:           it.UnitPrice,
		Amount:              amount,
		StockAfter:          after,
		InventoryTotalAfter: ds.InventoryValue(),
		Note:                note,
	}
	ds.InventoryHistory = append(ds.InventoryHistory, rec)
	if err := s.store.Persist(); err != nil {
		return "", fmt.Errorf("persist movement: %w", err)
	}
	return rec.ID, nil
}

// checkMovement validates action, item state and qty without mutating
// anything. For OUT it also checks the current stock covers qty.
func (s *Service) checkMovement(ds *snapshot.Dataset, action Action, sku string, qty int64) (*snapshot.Item, error) {
	switch action {
	case ActionIn, ActionOut, ActionAdjust:
	default:
		return nil, fmt.Errorf("%w: unknown action %q", shared.ErrValidation, action)
	}
	it, ok := ds.Items[sku]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", sku, shared.ErrNotFound)
	}
	if it.Disabled {
		return nil, fmt.Errorf("item %s: %w", sku, shared.ErrDisabled)
	}
	if qty < 0 {
		return nil, fmt.Errorf("%w: negative quantity", shared.ErrValidation)
	}
	if action == ActionOut && it.Stock < qty {
		return nil, fmt.Errorf("item %s: %w", sku, ErrInsufficientStock)
	}
	return it, nil
}

// ApplyBatch posts several IN or OUT movements all-or-nothing: every line is
// validated before the first is applied, and OUT demand is summed per sku so
// repeated skus cannot pass individually and then fail mid-batch. ADJUST is
// not supported in batch form; multiple absolute-set targets for one sku have
// no sensible meaning.
func (s *Service) ApplyBatch(action Action, lines []Line) ([]string, error) {
	if action != ActionIn && action != ActionOut {
		return nil, fmt.Errorf("%w: batch supports IN and OUT only", shared.ErrValidation)
	}
	ds := s.store.Data()
	demand := map[string]int64{}
	for _, ln := range lines {
		it, err := s.checkMovement(ds, action, ln.SKU, ln.Qty)
		if err != nil {
			return nil, err
		}
		if action == ActionOut {
			demand[ln.SKU] += ln.Qty
			if demand[ln.SKU] > it.Stock {
				return nil, fmt.Errorf("item %s: %w", ln.SKU, ErrInsufficientStock)
			}
		}
	}

	ids := make([]string, 0, len(lines))
	for _, ln := range lines {
		id, err := s.Apply(action, ln.SKU, ln.Qty, ln.Note)
		if err != nil {
			return ids, fmt.Errorf("apply batch line %s: %w", ln.SKU, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Movements returns the inventory ledger sorted by ts ascending, insertion
// order breaking ties. Soft-deleted records are skipped unless requested.
func (s *Service) Movements(includeDeleted bool) []*snapshot.Movement {
	out := []*snapshot.Movement{}
	for _, r := range s.store.Data().InventoryHistory {
		if !includeDeleted && r.Deleted {
			continue
		}
		out = append(out, r)
	}
	byTS(out, func(r *snapshot.Movement) string { return r.TS })
	return out
}
