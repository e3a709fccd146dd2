// Package history is the read-only query side of the transaction log:
// filtering, sorting and aggregate statistics. Nothing here mutates the
// history collection.
package history

import (
	"fmt"
	"sort"
	"time"

	"tablepos/internal/models"
)

// Query narrows the history view. Empty fields leave that side unbounded;
// PaymentMethod "all" (or empty) matches every method.
type Query struct {
	DateFrom      string // YYYY-MM-DD, inclusive from midnight
	DateTo        string // YYYY-MM-DD, inclusive through 23:59:59
	PaymentMethod string
}

// Stats are the derived aggregates over a filtered view.
type Stats struct {
	Revenue            float64 `json:"revenue"`
	Count              int     `json:"count"`
	AverageTransaction float64 `json:"averageTransaction"`
	TotalItemsSold     int     `json:"totalItemsSold"`
}

const dateLayout = "2006-01-02"

// Filter keeps records whose payment timestamp falls inside the query's
// date window and whose payment method matches.
func Filter(records []models.HistoryRecord, q Query) ([]models.HistoryRecord, error) {
	var from, to time.Time
	if q.DateFrom != "" {
		parsed, err := time.ParseInLocation(dateLayout, q.DateFrom, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid dateFrom %q: %w", q.DateFrom, err)
		}
		from = parsed
	}
	if q.DateTo != "" {
		parsed, err := time.ParseInLocation(dateLayout, q.DateTo, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid dateTo %q: %w", q.DateTo, err)
		}
		to = parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}

	method := q.PaymentMethod
	if method == "all" {
		method = ""
	}

	out := make([]models.HistoryRecord, 0, len(records))
	for _, record := range records {
		ts := record.PaymentTimestamp
		if !from.IsZero() && ts.Before(from) {
			continue
		}
		if !to.IsZero() && ts.After(to) {
			continue
		}
		if method != "" && string(record.PaymentMethod) != method {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

// Sort orders records by payment timestamp, "asc" or "desc" (default).
// The sort is stable and the input slice is left as is.
func Sort(records []models.HistoryRecord, order string) []models.HistoryRecord {
	out := append([]models.HistoryRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		if order == "asc" {
			return out[i].PaymentTimestamp.Before(out[j].PaymentTimestamp)
		}
		return out[j].PaymentTimestamp.Before(out[i].PaymentTimestamp)
	})
	return out
}

// Aggregate derives revenue, count, average transaction value and items
// sold. An empty view yields all zeros rather than a division by zero.
func Aggregate(records []models.HistoryRecord) Stats {
	stats := Stats{Count: len(records)}
	for _, record := range records {
		stats.Revenue += record.Total
		stats.TotalItemsSold += len(record.Items)
	}
	if stats.Count > 0 {
		stats.AverageTransaction = stats.Revenue / float64(stats.Count)
	}
	return stats
}

// Find returns the history record with the given order id.
func Find(records []models.HistoryRecord, id int64) (models.HistoryRecord, bool) {
	for _, record := range records {
		if record.ID == id {
			return record, true
		}
	}
	return models.HistoryRecord{}, false
}
