package snapshot

import "encoding/json"

// Item is a master-data product record. The sku is the key of Dataset.Items
// and is not repeated inside the record.
type Item struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Category  string `json:"category"`
	Stock     int64  `json:"stock"`
	Disabled  bool   `json:"disabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Customer is a master-data customer record, keyed by cid in Dataset.Customers.
type Customer struct {
	Name      string `json:"name"`
	Disabled  bool   `json:"disabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Movement is one inventory ledger entry. Everything except the soft-delete
// fields is immutable once written; stock_after and inventory_total_after are
// point-in-time values and are never recomputed after later edits.
type Movement struct {
	ID                  string `json:"id"`
	TS                  string `json:"ts"`
	Action              string `json:"action"`
	SKU                 string `json:"sku"`
	Qty                 int64  `json:"qty"`
	UnitPrice           int64  `json:"unit_price"`
	Amount              int64  `json:"amount"`
	StockAfter          int64  `json:"stock_after"`
	InventoryTotalAfter int64  `json:"inventory_total_after"`
	Note                string `json:"note"`
	Deleted             bool   `json:"deleted"`
	DeletedAt           string `json:"deleted_at,omitempty"`
	DeletedReason       string `json:"deleted_reason,omitempty"`
}

// Sale is one sales ledger entry. unit_price and line_total are snapshotted
// from the item at the time of sale. Sales do not move stock.
type Sale struct {
	ID            string `json:"id"`
	TS            string `json:"ts"`
	CID           string `json:"cid"`
	SKU           string `json:"sku"`
	Qty           int64  `json:"qty"`
	UnitPrice     int64  `json:"unit_price"`
	LineTotal     int64  `json:"line_total"`
	Note          string `json:"note"`
	Deleted       bool   `json:"deleted"`
	DeletedAt     string `json:"deleted_at,omitempty"`
	DeletedReason string `json:"deleted_reason,omitempty"`
}

// Settings holds process-wide options persisted with the snapshot.
type Settings struct {
	Theme                string `json:"theme"`
	PriceMode            string `json:"price_mode"`
	PriceDecimals        int    `json:"price_decimals"`
	DangerConfirmPhrase  string `json:"danger_confirm_phrase"`
	ShowDeletedByDefault bool   `json:"show_deleted_by_default"`
}

// UnmarshalJSON decodes settings over the defaults, so keys absent from an
// older snapshot keep their default value rather than the zero value.
func (s *Settings) UnmarshalJSON(b []byte) error {
	type plain Settings
	p := plain(DefaultSettings())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = Settings(p)
	return nil
}

// Dataset is the entire persisted state. The top-level keys and field names
// are a compatibility surface shared with pre-existing snapshot files.
type Dataset struct {
	Items            map[string]*Item     `json:"items"`
	Customers        map[string]*Customer `json:"customers"`
	InventoryHistory []*Movement          `json:"inventory_history"`
	Sales            []*Sale              `json:"sales"`
	CategoryColors   map[string]string    `json:"category_colors"`
	Settings         Settings             `json:"settings"`
}

// DefaultSettings returns the settings written into a fresh snapshot.
func DefaultSettings() Settings {
	return Settings{
		Theme:                "",
		PriceMode:            "int",
		PriceDecimals:        2,
		DangerConfirmPhrase:  "DELETE",
		ShowDeletedByDefault: false,
	}
}

// DefaultDataset returns an empty, fully-populated dataset.
func DefaultDataset() *Dataset {
	return &Dataset{
		Items:            map[string]*Item{},
		Customers:        map[string]*Customer{},
		InventoryHistory: []*Movement{},
		Sales:            []*Sale{},
		CategoryColors:   map[string]string{},
		Settings:         DefaultSettings(),
	}
}

// InventoryValue is the live valuation: sum of stock times unit price over
// items that are not disabled. It is always recomputed, never cached.
func (d *Dataset) InventoryValue() int64 {
	var total int64
	for _, it := range d.Items {
		if it.Disabled {
			continue
		}
		total += it.Stock * it.UnitPrice
	}
	return total
}
