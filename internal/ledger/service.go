// Package ledger appends movement and sales records, derives stock and
// valuation figures at write time, and runs the soft-delete lifecycle over
// both ledgers. Records are immutable once written except for their
// soft-delete fields; stock_after and inventory_total_after are facts about
// the past and are never recomputed when other records change.
package ledger

import (
	"errors"
	"sort"

	"github.com/tallybook/tallybook/internal/store"
)

// ErrInsufficientStock is returned when an OUT movement exceeds current stock.
var ErrInsufficientStock = errors.New("ledger: insufficient stock")

// Action enumerates supported inventory movements.
type Action string

const (
	// ActionIn adds qty to stock.
	ActionIn Action = "IN"
	// ActionOut removes qty from stock, rejecting negative balances.
	ActionOut Action = "OUT"
	// ActionAdjust sets stock to qty as an absolute level.
	ActionAdjust Action = "ADJUST"
)

// Line is one sku/qty entry of a batch.
type Line struct {
	SKU  string
	Qty  int64
	Note string
}

// Service posts ledger records through the shared store.
type Service struct {
	store *store.Store
}

// NewService builds Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// byTS sorts ts ascending, keeping insertion order for equal timestamps.
func byTS[T any](records []T, ts func(T) string) {
	sort.SliceStable(records, func(i, j int) bool {
		return ts(records[i]) < ts(records[j])
	})
}
