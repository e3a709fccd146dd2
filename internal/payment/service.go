package payment

import (
	"time"

	"tablepos/internal/models"
	"tablepos/internal/store"
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Pay finalizes the selected orders. The shrunken orders collection and the
// grown history collection are written in the same store transaction, so a
// crash can never leave an order in both or in neither.
func (s *Service) Pay(orderIDs []int64, method models.PaymentMethod, amountReceived float64) (Result, error) {
	selected := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		selected[id] = true
	}

	var result Result
	err := s.store.Update(func(st *store.State) error {
		// Readiness is re-checked against the state inside this
		// transaction; a snapshot taken before it could have been
		// reverted or paid by another request in the meantime.
		ready := make(map[int64]bool, len(st.Orders))
		for _, order := range st.Orders {
			if order.Status == models.StatusReady {
				ready[order.ID] = true
			}
		}
		for id := range selected {
			if !ready[id] {
				return ErrOrderNotReady
			}
		}

		res, err := Process(st.Orders, selected, method, amountReceived, s.now())
		if err != nil {
			return err
		}
		st.Orders = res.Remaining
		st.History = append(st.History, res.Entries...)
		result = res
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
