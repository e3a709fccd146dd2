// Package payment turns a selection of ready orders into finalized history
// entries. ComputeTotal and Process are pure; Service wires them to the
// store so the orders/history move commits as one transaction.
package payment

import (
	"errors"
	"math"
	"time"

	"tablepos/internal/models"
)

var (
	ErrInsufficientCash = errors.New("amount received is less than the total due")
	ErrOrderNotReady    = errors.New("selection contains an order that is not ready for payment")
)

// Result of a processed payment.
type Result struct {
	// Remaining replaces the active-orders collection.
	Remaining []models.Order
	// Entries are appended to history.
	Entries []models.HistoryRecord
	Total   float64
	Change  float64
}

// ComputeTotal sums the totals of orders that are both ready and selected.
// Selected ids with no matching ready order contribute nothing.
func ComputeTotal(orders []models.Order, selected map[int64]bool) float64 {
	var total float64
	for _, order := range orders {
		if order.Status == models.StatusReady && selected[order.ID] {
			total += order.Total
		}
	}
	return total
}

// Process validates the tendered amount, partitions orders by selection and
// produces the paid history entries. Nothing is mutated on rejection; the
// input slice is never modified.
func Process(orders []models.Order, selected map[int64]bool, method models.PaymentMethod, amountReceived float64, now time.Time) (Result, error) {
	total := ComputeTotal(orders, selected)

	if method == models.PaymentCash && amountReceived < total {
		return Result{}, ErrInsufficientCash
	}

	result := Result{Total: total, Remaining: make([]models.Order, 0, len(orders))}
	for _, order := range orders {
		if !selected[order.ID] {
			result.Remaining = append(result.Remaining, order)
			continue
		}
		paid := order
		paid.Status = models.StatusPaid
		paid.PrevStatus = ""
		paid.Items = append([]models.OrderLineItem(nil), order.Items...)
		result.Entries = append(result.Entries, models.HistoryRecord{
			Order:            paid,
			PaymentMethod:    method,
			PaymentTimestamp: now,
		})
	}

	if method == models.PaymentCash {
		result.Change = math.Max(0, amountReceived-total)
	}
	return result, nil
}
