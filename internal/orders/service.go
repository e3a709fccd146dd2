package orders

import (
	"errors"
	"time"

	"tablepos/internal/models"
	"tablepos/internal/store"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrTableNotFound    = errors.New("table not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrNothingToRevert  = errors.New("order has no previous status to restore")
)

// Service owns the order lifecycle: creation, the pending→ready→paid
// progression and the single-step status revert.
type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Create builds a new pending order for a table from the given menu item
// ids. Line items are copied by value so later menu edits cannot change
// the order.
func (s *Service) Create(tableID int64, itemIDs []int64) (models.Order, error) {
	if len(itemIDs) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	var created models.Order
	err := s.store.Update(func(st *store.State) error {
		table, ok := findTable(st.Tables, tableID)
		if !ok {
			return ErrTableNotFound
		}

		lines := make([]models.OrderLineItem, 0, len(itemIDs))
		var total float64
		for _, itemID := range itemIDs {
			item, ok := findMenuItem(st.MenuItems, itemID)
			if !ok {
				return ErrMenuItemNotFound
			}
			lines = append(lines, models.OrderLineItem{
				ID:       item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Category: item.Category,
			})
			total += item.Price
		}

		now := s.now()
		created = models.Order{
			ID:        nextOrderID(st, now),
			TableID:   table.ID,
			TableName: table.Name,
			Items:     lines,
			Total:     total,
			Status:    models.StatusPending,
			Timestamp: now,
		}
		st.Orders = append(st.Orders, created)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// List returns the active orders, optionally narrowed to one status.
func (s *Service) List(status models.Status) ([]models.Order, error) {
	all, err := s.store.Orders()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := make([]models.Order, 0, len(all))
	for _, order := range all {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

// SetStatus advances an order along the lifecycle. Only the targeted order
// changes; a transition outside {pending→ready, ready→paid} is rejected
// before anything is written.
func (s *Service) SetStatus(orderID int64, next models.Status) (models.Order, error) {
	var updated models.Order
	err := s.store.Update(func(st *store.State) error {
		idx := indexOf(st.Orders, orderID)
		if idx < 0 {
			return ErrOrderNotFound
		}
		current := st.Orders[idx]
		if !current.Status.CanTransitionTo(next) {
			return ErrInvalidStatus
		}
		current.PrevStatus = current.Status
		current.Status = next
		st.Orders[idx] = current
		updated = current
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

// Revert restores the status recorded by the last SetStatus call, once.
// A second revert without an intervening transition is rejected.
func (s *Service) Revert(orderID int64) (models.Order, error) {
	var updated models.Order
	err := s.store.Update(func(st *store.State) error {
		idx := indexOf(st.Orders, orderID)
		if idx < 0 {
			return ErrOrderNotFound
		}
		current := st.Orders[idx]
		if current.PrevStatus == "" {
			return ErrNothingToRevert
		}
		current.Status = current.PrevStatus
		current.PrevStatus = ""
		st.Orders[idx] = current
		updated = current
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

// nextOrderID assigns a millisecond-timestamp id, bumped past any id
// already used by an active or historical order. Ids are never reused.
func nextOrderID(st *store.State, now time.Time) int64 {
	used := make(map[int64]struct{}, len(st.Orders)+len(st.History))
	for _, order := range st.Orders {
		used[order.ID] = struct{}{}
	}
	for _, record := range st.History {
		used[record.ID] = struct{}{}
	}

	id := now.UnixMilli()
	for {
		if _, taken := used[id]; !taken {
			return id
		}
		id++
	}
}

func indexOf(list []models.Order, id int64) int {
	for i, order := range list {
		if order.ID == id {
			return i
		}
	}
	return -1
}

func findTable(tables []models.Table, id int64) (models.Table, bool) {
	for _, table := range tables {
		if table.ID == id {
			return table, true
		}
	}
	return models.Table{}, false
}

func findMenuItem(items []models.MenuItem, id int64) (models.MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
