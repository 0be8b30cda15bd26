package masterdata

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
	"github.com/tallybook/tallybook/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	base := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	tick := 0
	st.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})
	return NewService(st)
}

func TestUpsertItemCreatesWithDefaults(t *testing.T) {
	svc := newTestService(t)
	err := svc.UpsertItem(ItemInput{SKU: " SKU1 ", Name: " Widget ", UnitPrice: 100, Category: " tools ", Stock: 5})
	require.NoError(t, err)

	it, err := svc.Item("SKU1")
	require.NoError(t, err)
	require.Equal(t, "Widget", it.Name)
	require.Equal(t, "tools", it.Category)
	require.Equal(t, int64(100), it.UnitPrice)
	require.Equal(t, int64(5), it.Stock)
	require.False(t, it.Disabled)
	require.Equal(t, it.CreatedAt, it.UpdatedAt)
}

func TestUpsertItemUpdatePreservesCreatedAt(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "SKU1", Name: "Widget", UnitPrice: 100, Category: "tools"}))
	it, err := svc.Item("SKU1")
	require.NoError(t, err)
	created := it.CreatedAt

	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "SKU1", Name: "Widget v2", UnitPrice: 120, Category: "tools", Stock: 3}))
	it, err = svc.Item("SKU1")
	require.NoError(t, err)
	require.Equal(t, "Widget v2", it.Name)
	require.Equal(t, created, it.CreatedAt)
	require.Greater(t, it.UpdatedAt, created)
}

func TestUpsertItemValidation(t *testing.T) {
	svc := newTestService(t)
	cases := []ItemInput{
		{SKU: "  ", Name: "Widget", UnitPrice: 1, Category: "tools"},
		{SKU: "SKU1", Name: " ", UnitPrice: 1, Category: "tools"},
		{SKU: "SKU1", Name: "Widget", UnitPrice: 1, Category: ""},
		{SKU: "SKU1", Name: "Widget", UnitPrice: -1, Category: "tools"},
		{SKU: "SKU1", Name: "Widget", UnitPrice: 1, Category: "tools", Stock: -1},
	}
	for _, in := range cases {
		require.ErrorIs(t, svc.UpsertItem(in), shared.ErrValidation)
	}
}

func TestItemLifecycle(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "SKU1", Name: "Widget", UnitPrice: 100, Category: "tools"}))

	require.NoError(t, svc.DisableItem("SKU1"))
	it, err := svc.Item("SKU1")
	require.NoError(t, err)
	require.True(t, it.Disabled)

	require.NoError(t, svc.EnableItem("SKU1"))
	it, err = svc.Item("SKU1")
	require.NoError(t, err)
	require.False(t, it.Disabled)

	require.ErrorIs(t, svc.DisableItem("missing"), shared.ErrNotFound)
	require.ErrorIs(t, svc.EnableItem("missing"), shared.ErrNotFound)
}

func TestDeleteItemReferentialIntegrity(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "SKU1", Name: "Widget", UnitPrice: 100, Category: "tools"}))

	ds := svc.store.Data()
	ds.InventoryHistory = append(ds.InventoryHistory, &snapshot.Movement{
		ID: "IH_x", TS: "2026-01-02 09:05:00", Action: "IN", SKU: "SKU1", Qty: 1,
	})

	require.ErrorIs(t, svc.DeleteItem("SKU1", false), shared.ErrReferenced)
	_, err := svc.Item("SKU1")
	require.NoError(t, err)

	// soft-deleted references no longer block
	ds.InventoryHistory[0].Deleted = true
	require.NoError(t, svc.DeleteItem("SKU1", false))
	_, err = svc.Item("SKU1")
	require.ErrorIs(t, err, shared.ErrNotFound)

	// the dangling sku stays readable on the old record
	require.Equal(t, "SKU1", ds.InventoryHistory[0].SKU)
}

func TestDeleteItemAllowOrphan(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "SKU1", Name: "Widget", UnitPrice: 100, Category: "tools"}))
	ds := svc.store.Data()
	ds.Sales = append(ds.Sales, &snapshot.Sale{ID: "S_x", TS: "2026-01-02 09:05:00", CID: "C1", SKU: "SKU1", Qty: 1})

	require.NoError(t, svc.DeleteItem("SKU1", true))
	require.Equal(t, "SKU1", ds.Sales[0].SKU)
}

func TestCategoriesSortedActiveOnly(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "A", Name: "a", UnitPrice: 1, Category: "zeta"}))
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "B", Name: "b", UnitPrice: 1, Category: "alpha"}))
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "C", Name: "c", UnitPrice: 1, Category: "midway"}))
	require.NoError(t, svc.DisableItem("C"))

	require.Equal(t, []string{"alpha", "zeta"}, svc.Categories(false))
	require.Equal(t, []string{"alpha", "midway", "zeta"}, svc.Categories(true))
}

func TestItemsByCategorySortedByName(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "S2", Name: "Bravo", UnitPrice: 1, Category: "tools"}))
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "S1", Name: "Alpha", UnitPrice: 1, Category: "tools"}))
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "S3", Name: "Other", UnitPrice: 1, Category: "misc"}))
	require.NoError(t, svc.UpsertItem(ItemInput{SKU: "S4", Name: "Hidden", UnitPrice: 1, Category: "tools"}))
	require.NoError(t, svc.DisableItem("S4"))

	refs := svc.ItemsByCategory("tools", false)
	require.Equal(t, []Ref{{ID: "S1", Name: "Alpha"}, {ID: "S2", Name: "Bravo"}}, refs)

	refs = svc.ItemsByCategory("tools", true)
	require.Len(t, refs, 3)
}

func TestUpsertCustomerAndLifecycle(t *testing.T) {
	svc := newTestService(t)
	require.ErrorIs(t, svc.UpsertCustomer(CustomerInput{CID: "", Name: "Alice"}), shared.ErrValidation)
	require.ErrorIs(t, svc.UpsertCustomer(CustomerInput{CID: "C1", Name: "  "}), shared.ErrValidation)

	require.NoError(t, svc.UpsertCustomer(CustomerInput{CID: "C1", Name: "Alice"}))
	cu, err := svc.Customer("C1")
	require.NoError(t, err)
	created := cu.CreatedAt

	require.NoError(t, svc.UpsertCustomer(CustomerInput{CID: "C1", Name: "Alice B"}))
	cu, err = svc.Customer("C1")
	require.NoError(t, err)
	require.Equal(t, "Alice B", cu.Name)
	require.Equal(t, created, cu.CreatedAt)

	require.NoError(t, svc.DisableCustomer("C1"))
	require.Empty(t, svc.Customers(false))
	require.Len(t, svc.Customers(true), 1)

	require.NoError(t, svc.EnableCustomer("C1"))
	require.Len(t, svc.Customers(false), 1)
}

func TestDeleteCustomerReferentialIntegrity(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertCustomer(CustomerInput{CID: "C1", Name: "Alice"}))
	ds := svc.store.Data()
	ds.Sales = append(ds.Sales, &snapshot.Sale{ID: "S_x", TS: "2026-01-02 09:05:00", CID: "C1", SKU: "SKU1", Qty: 1})

	require.ErrorIs(t, svc.DeleteCustomer("C1", false), shared.ErrReferenced)
	require.NoError(t, svc.DeleteCustomer("C1", true))
	_, err := svc.Customer("C1")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomersSortedByName(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.UpsertCustomer(CustomerInput{CID: "C2", Name: "Yoko"}))
	require.NoError(t, svc.UpsertCustomer(CustomerInput{CID: "C1", Name: "Akira"}))

	refs := svc.Customers(false)
	require.Equal(t, []Ref{{ID: "C1", Name: "Akira"}, {ID: "C2", Name: "Yoko"}}, refs)
}
