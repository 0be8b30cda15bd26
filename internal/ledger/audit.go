package ledger

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// The soft-delete lifecycle is identical for both ledgers: mark with reason
// and timestamp, restore, hard delete a single record, or purge everything
// currently marked. Hard deletion never re-derives stock_after or
// inventory_total_after on surviving records.

// SoftDeleteMovement flags a movement deleted with a reason.
func (s *Service) SoftDeleteMovement(id, reason string) error {
	r, err := s.findMovement(id)
	if err != nil {
		return err
	}
	r.Deleted = true
	r.DeletedAt = s.store.Now()
	r.DeletedReason = reason
	return s.store.Persist()
}

// RestoreMovement clears the deleted flag and its metadata.
func (s *Service) RestoreMovement(id string) error {
	r, err := s.findMovement(id)
	if err != nil {
		return err
	}
	r.Deleted = false
	r.DeletedAt = ""
	r.DeletedReason = ""
	return s.store.Persist()
}

// DeleteMovement removes one movement permanently, deleted or not.
func (s *Service) DeleteMovement(id string) error {
	ds := s.store.Data()
	kept := ds.InventoryHistory[:0]
	found := false
	for _, r := range ds.InventoryHistory {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("movement %s: %w", id, shared.ErrNotFound)
	}
	ds.InventoryHistory = kept
	return s.store.Persist()
}

// PurgeMovements removes every movement currently flagged deleted and returns
// how many were removed.
func (s *Service) PurgeMovements() (int, error) {
	ds := s.store.Data()
	kept := make([]*snapshot.Movement, 0, len(ds.InventoryHistory))
	for _, r := range ds.InventoryHistory {
		if r.Deleted {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(ds.InventoryHistory) - len(kept)
	ds.InventoryHistory = kept
	if err := s.store.Persist(); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Service) findMovement(id string) (*snapshot.Movement, error) {
	for _, r := range s.store.Data().InventoryHistory {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("movement %s: %w", id, shared.ErrNotFound)
}

// SoftDeleteSale flags a sale deleted with a reason.
func (s *Service) SoftDeleteSale(id, reason string) error {
	r, err := s.findSale(id)
	if err != nil {
		return err
	}
	r.Deleted = true
	r.DeletedAt = s.store.Now()
	r.DeletedReason = reason
	return s.store.Persist()
}

// RestoreSale clears the deleted flag and its metadata.
func (s *Service) RestoreSale(id string) error {
	r, err := s.findSale(id)
	if err != nil {
		return err
	}
	r.Deleted = false
	r.DeletedAt = ""
	r.DeletedReason = ""
	return s.store.Persist()
}

// DeleteSale removes one sale permanently.
func (s *Service) DeleteSale(id string) error {
	ds := s.store.Data()
	kept := ds.Sales[:0]
	found := false
	for _, r := range ds.Sales {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("sale %s: %w", id, shared.ErrNotFound)
	}
	ds.Sales = kept
	return s.store.Persist()
}

// PurgeSales removes every sale currently flagged deleted and returns how
// many were removed.
func (s *Service) PurgeSales() (int, error) {
	ds := s.store.Data()
	kept := make([]*snapshot.Sale, 0, len(ds.Sales))
	for _, r := range ds.Sales {
		if r.Deleted {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(ds.Sales) - len(kept)
	ds.Sales = kept
	if err := s.store.Persist(); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Service) findSale(id string) (*snapshot.Sale, error) {
	for _, r := range s.store.Data().Sales {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("sale %s: %w", id, shared.ErrNotFound)
}
