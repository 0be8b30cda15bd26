// Package report computes summary figures on demand from the live store
// state. Nothing here is cached; every call walks current data.
package report

import "github.com/tallybook/tallybook/internal/store"

// Service answers aggregate queries. Read-only.
type Service struct {
	store *store.Store
}

// NewService builds Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// InventoryValuation is the sum of stock times unit price over enabled items.
// Always computed live, so it agrees with master data regardless of what the
// ledger contains.
func (s *Service) InventoryValuation() int64 {
	return s.store.Data().InventoryValue()
}

// SalesSum totals line_total over non-deleted sales. start and end are
// inclusive timestamp-string bounds in the snapshot layout; an empty string
// leaves that end unbounded. A non-empty cid restricts to one customer.
func (s *Service) SalesSum(start, end, cid string) int64 {
	var total int64
	for _, r := range s.store.Data().Sales {
		if r.Deleted {
			continue
		}
		if start != "" && r.TS < start {
			continue
		}
		if end != "" && r.TS > end {
			continue
		}
		if cid != "" && r.CID != cid {
			continue
		}
		total += r.LineTotal
	}
	return total
}
