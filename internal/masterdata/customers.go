package masterdata

import (
	"fmt"
	"strings"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// CustomerInput carries the fields accepted by UpsertCustomer.
type CustomerInput struct {
	CID  string `validate:"required"`
	Name string `validate:"required"`
}

// UpsertCustomer creates or updates a customer, preserving created_at on
// update.
func (s *Service) UpsertCustomer(in CustomerInput) error {
	in.CID = strings.TrimSpace(in.CID)
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}

	ds := s.store.Data()
	ts := s.store.Now()
	if cu, ok := ds.Customers[in.CID]; ok {
		cu.Name = in.Name
		cu.UpdatedAt = ts
	} else {
		ds.Customers[in.CID] = &snapshot.Customer{
			Name:      in.Name,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
	}
	return s.store.Persist()
}

// Customer looks up one customer by cid.
func (s *Service) Customer(cid string) (*snapshot.Customer, error) {
	cu, ok := s.store.Data().Customers[cid]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", cid, shared.ErrNotFound)
	}
	return cu, nil
}

// DisableCustomer marks the customer inactive.
func (s *Service) DisableCustomer(cid string) error {
	return s.setCustomerDisabled(cid, true)
}

// EnableCustomer reactivates a disabled customer.
func (s *Service) EnableCustomer(cid string) error {
	return s.setCustomerDisabled(cid, false)
}

func (s *Service) setCustomerDisabled(cid string, disabled bool) error {
	cu, err := s.Customer(cid)
	if err != nil {
		return err
	}
	cu.Disabled = disabled
	cu.UpdatedAt = s.store.Now()
	return s.store.Persist()
}

// DeleteCustomer physically removes a customer. Only the sales ledger can
// reference customers, so that is the referential integrity check.
func (s *Service) DeleteCustomer(cid string, allowOrphan bool) error {
	ds := s.store.Data()
	if !allowOrphan && customerReferenced(ds, cid) {
		return fmt.Errorf("customer %s: %w", cid, shared.ErrReferenced)
	}
	if _, ok := ds.Customers[cid]; !ok {
		return nil
	}
	delete(ds.Customers, cid)
	return s.store.Persist()
}

func customerReferenced(ds *snapshot.Dataset, cid string) bool {
	for _, r := range ds.Sales {
		if r.CID == cid && !r.Deleted {
			return true
		}
	}
	return false
}

// Customers lists (cid, name) pairs sorted by display name.
func (s *Service) Customers(includeDisabled bool) []Ref {
	out := []Ref{}
	for cid, cu := range s.store.Data().Customers {
		if !includeDisabled && cu.Disabled {
			continue
		}
		out = append(out, Ref{ID: cid, Name: cu.Name})
	}
	sortRefs(out)
	return out
}
