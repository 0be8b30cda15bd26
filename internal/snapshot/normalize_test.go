package snapshot

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var normalizeNow = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

func TestNormalizeEmptyDataset(t *testing.T) {
	var ds Dataset
	Normalize(&ds, normalizeNow)

	require.NotNil(t, ds.Items)
	require.NotNil(t, ds.Customers)
	require.NotNil(t, ds.InventoryHistory)
	require.NotNil(t, ds.Sales)
	require.NotNil(t, ds.CategoryColors)
	require.Equal(t, DefaultSettings(), ds.Settings)
}

func TestNormalizeBackfillsMasterTimestamps(t *testing.T) {
	ds := DefaultDataset()
	ds.Items["SKU1"] = &Item{Name: "Widget", Category: "tools"}
	ds.Customers["C1"] = &Customer{Name: "Alice"}

	Normalize(ds, normalizeNow)

	require.Equal(t, "2026-01-02 09:00:00", ds.Items["SKU1"].CreatedAt)
	require.Equal(t, "2026-01-02 09:00:00", ds.Items["SKU1"].UpdatedAt)
	require.Equal(t, "2026-01-02 09:00:00", ds.Customers["C1"].CreatedAt)
	require.False(t, ds.Items["SKU1"].Disabled)
	require.Zero(t, ds.Items["SKU1"].Stock)
}

func TestNormalizePreservesExistingTimestamps(t *testing.T) {
	ds := DefaultDataset()
	ds.Items["SKU1"] = &Item{Name: "Widget", CreatedAt: "2020-05-05 05:05:05", UpdatedAt: "2021-06-06 06:06:06"}

	Normalize(ds, normalizeNow)

	require.Equal(t, "2020-05-05 05:05:05", ds.Items["SKU1"].CreatedAt)
	require.Equal(t, "2021-06-06 06:06:06", ds.Items["SKU1"].UpdatedAt)
}

func TestNormalizeBackfillsLedgerIDs(t *testing.T) {
	ds := DefaultDataset()
	ds.InventoryHistory = append(ds.InventoryHistory, &Movement{TS: "2026-01-01 00:00:00"})
	ds.Sales = append(ds.Sales, &Sale{TS: "2026-01-01 00:00:00"})

	Normalize(ds, normalizeNow)

	require.True(t, strings.HasPrefix(ds.InventoryHistory[0].ID, "IH_"))
	require.True(t, strings.HasPrefix(ds.Sales[0].ID, "S_"))
	require.False(t, ds.InventoryHistory[0].Deleted)
	require.False(t, ds.Sales[0].Deleted)
}

func TestNormalizeIsDeterministicOnSecondRun(t *testing.T) {
	ds := DefaultDataset()
	ds.InventoryHistory = append(ds.InventoryHistory, &Movement{TS: "2026-01-01 00:00:00"})
	Normalize(ds, normalizeNow)
	id := ds.InventoryHistory[0].ID

	Normalize(ds, normalizeNow.Add(time.Hour))
	require.Equal(t, id, ds.InventoryHistory[0].ID)
}

func TestSettingsDecodeKeepsDefaultsForMissingKeys(t *testing.T) {
	var ds Dataset
	raw := `{"settings": {"theme": "dark"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &ds))

	require.Equal(t, "dark", ds.Settings.Theme)
	require.Equal(t, "int", ds.Settings.PriceMode)
	require.Equal(t, 2, ds.Settings.PriceDecimals)
	require.Equal(t, "DELETE", ds.Settings.DangerConfirmPhrase)
}

func TestNormalizeClampsPriceDecimals(t *testing.T) {
	ds := DefaultDataset()
	ds.Settings.PriceDecimals = 9
	Normalize(ds, normalizeNow)
	require.Equal(t, 6, ds.Settings.PriceDecimals)
}
