package models

import "time"

// MenuItem is a catalog entry. Category is either one of the built-in
// categories or a user-defined custom category name.
type MenuItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Table is static reference data.
type Table struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderLineItem is a by-value snapshot of a MenuItem taken when the order
// is created. Later menu edits never reach back into an order.
type OrderLineItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Order is an active order assigned to a table. Total is always the sum of
// the line item prices at creation time.
type Order struct {
	ID        int64           `json:"id"`
	TableID   int64           `json:"tableId"`
	TableName string          `json:"tableName"`
	Items     []OrderLineItem `json:"items"`
	Total     float64         `json:"total"`
	Status    Status          `json:"status"`
	// PrevStatus remembers the status before the most recent transition so
	// it can be reverted once. Cleared on revert.
	PrevStatus Status    `json:"prevStatus,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// HistoryRecord is a paid order moved out of the active collection.
// Immutable once written.
type HistoryRecord struct {
	Order
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentTimestamp time.Time     `json:"paymentTimestamp"`
}
