package snapshot

import (
	"time"

	"github.com/tallybook/tallybook/internal/shared"
)

// Normalize backfills every optional field an older snapshot may be missing,
// so downstream code can assume a fully-populated shape. It never rejects a
// dataset. now supplies the timestamp used for missing created_at/updated_at.
func Normalize(ds *Dataset, now time.Time) {
	ts := shared.FormatTime(now)

	if ds.Items == nil {
		ds.Items = map[string]*Item{}
	}
	if ds.Customers == nil {
		ds.Customers = map[string]*Customer{}
	}
	if ds.InventoryHistory == nil {
		ds.InventoryHistory = []*Movement{}
	}
	if ds.Sales == nil {
		ds.Sales = []*Sale{}
	}
	if ds.CategoryColors == nil {
		ds.CategoryColors = map[string]string{}
	}

	// A snapshot written without a settings section decodes to the zero
	// struct; an empty price mode is the marker for that.
	if ds.Settings.PriceMode == "" {
		theme := ds.Settings.Theme
		ds.Settings = DefaultSettings()
		ds.Settings.Theme = theme
	}
	if ds.Settings.PriceDecimals < 0 {
		ds.Settings.PriceDecimals = 0
	}
	if ds.Settings.PriceDecimals > 6 {
		ds.Settings.PriceDecimals = 6
	}

	for _, it := range ds.Items {
		if it.CreatedAt == "" {
			it.CreatedAt = ts
		}
		if it.UpdatedAt == "" {
			it.UpdatedAt = ts
		}
	}
	for _, cu := range ds.Customers {
		if cu.CreatedAt == "" {
			cu.CreatedAt = ts
		}
		if cu.UpdatedAt == "" {
			cu.UpdatedAt = ts
		}
	}
	for _, r := range ds.InventoryHistory {
		if r.ID == "" {
			r.ID = shared.NewID("IH")
		}
	}
	for _, r := range ds.Sales {
		if r.ID == "" {
			r.ID = shared.NewID("S")
		}
	}
}
