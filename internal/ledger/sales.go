package ledger

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// AddSale appends one sales record and returns its id. The line total is
// computed from the item's current price and frozen into the record; stock is
// untouched (sales and inventory are independent ledgers).
func (s *Service) AddSale(cid, sku string, qty int64, note string) (string, error) {
	ds := s.store.Data()
	cu, ok := ds.Customers[cid]
	if !ok {
		return "", fmt.Errorf("customer %s: %w", cid, shared.ErrNotFound)
	}
	if cu.Disabled {
		return "", fmt.Errorf("customer %s: %w", cid, shared.ErrDisabled)
	}
	it, ok := ds.Items[sku]
	if !ok {
		return "", fmt.Errorf("item %s: %w", sku, shared.ErrNotFound)
	}
	if it.Disabled {
		return "", fmt.Errorf("item %s: %w", sku, shared.ErrDisabled)
	}
	if qty < 0 {
		return "", fmt.Errorf("%w: negative quantity", shared.ErrValidation)
	}

	rec := &snapshot.Sale{
		ID:        shared.NewID("S"),
		TS:        s.store.Now(),
		CID:       cid,
		SKU:       sku,
		Qty:       qty,
		UnitPrice: it.UnitPrice,
		LineTotal: it.UnitPrice * qty,
		Note:      note,
	}
	ds.Sales = append(ds.Sales, rec)
	if err := s.store.Persist(); err != nil {
		return "", fmt.Errorf("persist sale: %w", err)
	}
	return rec.ID, nil
}

// AddSalesBatch applies lines sequentially for one customer. Unlike
// ApplyBatch there is no up-front whole-batch check: each line is validated
// and applied on its own, so a failure leaves earlier lines committed. The
// ids applied so far are returned alongside the error.
func (s *Service) AddSalesBatch(cid string, lines []Line) ([]string, error) {
	ids := make([]string, 0, len(lines))
	for _, ln := range lines {
		id, err := s.AddSale(cid, ln.SKU, ln.Qty, ln.Note)
		if err != nil {
			return ids, fmt.Errorf("sales batch line %s: %w", ln.SKU, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Sales returns the sales ledger sorted by ts ascending, insertion order
// breaking ties.
func (s *Service) Sales(includeDeleted bool) []*snapshot.Sale {
	out := []*snapshot.Sale{}
	for _, r := range s.store.Data().Sales {
		if !includeDeleted && r.Deleted {
			continue
		}
		out = append(out, r)
	}
	byTS(out, func(r *snapshot.Sale) string { return r.TS })
	return out
}
