package orders

import (
	"errors"
	"path/filepath"
	"testing"

	"tablepos/internal/models"
	"tablepos/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st), st
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)

	order, err := svc.Create(1, []int64{1, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.TableName != "Stůl 1" {
		t.Fatalf("expected table name from catalog, got %q", order.TableName)
	}
	if order.Total != 185 {
		t.Fatalf("expected total 185, got %v", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.Items))
	}
	if order.ID == 0 {
		t.Fatalf("expected a nonzero order id")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name     string
		tableID  int64
		itemIDs  []int64
		expected error
	}{
		{name: "empty order", tableID: 1, itemIDs: nil, expected: ErrEmptyOrder},
		{name: "unknown table", tableID: 99, itemIDs: []int64{1}, expected: ErrTableNotFound},
		{name: "unknown menu item", tableID: 1, itemIDs: []int64{99}, expected: ErrMenuItemNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.tableID, tc.itemIDs); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}

	list, err := svc.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("rejected creations must not add orders, got %d", len(list))
	}
}

func TestLineItemsAreSnapshots(t *testing.T) {
	svc, st := newTestService(t)

	order, err := svc.Create(1, []int64{1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = st.Update(func(state *store.State) error {
		state.MenuItems[0].Price = 999
		state.MenuItems[0].Name = "Nový řízek"
		return nil
	})
	if err != nil {
		t.Fatalf("menu edit: %v", err)
	}

	list, err := svc.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	item := list[0].Items[0]
	if item.Price != 150 || item.Name != "Kuřecí řízek" {
		t.Fatalf("menu edit leaked into order line item: %+v", item)
	}
	if list[0].Total != order.Total {
		t.Fatalf("order total changed after menu edit")
	}
}

func TestSetStatusOnlyTouchesTarget(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Create(1, []int64{1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(2, []int64{3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.SetStatus(first.ID, models.StatusReady)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != models.StatusReady || updated.PrevStatus != models.StatusPending {
		t.Fatalf("unexpected transition result: %+v", updated)
	}

	list, err := svc.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, order := range list {
		if order.ID == second.ID && order.Status != models.StatusPending {
			t.Fatalf("untargeted order changed status to %s", order.Status)
		}
	}
}

func TestSetStatusRejectsInvalidTransition(t *testing.T) {
	svc, _ := newTestService(t)

	order, err := svc.Create(1, []int64{1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetStatus(order.ID, models.StatusPaid); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for pending→paid, got %v", err)
	}
	if _, err := svc.SetStatus(order.ID, models.StatusPending); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for pending→pending, got %v", err)
	}

	list, _ := svc.List("")
	if list[0].Status != models.StatusPending {
		t.Fatalf("rejected transition must not change the order")
	}
}

func TestSetStatusNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.SetStatus(12345, models.StatusReady); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	list, err := svc.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("missing-order update must leave the collection unchanged")
	}
}

func TestRevertSingleLevel(t *testing.T) {
	svc, _ := newTestService(t)

	order, err := svc.Create(1, []int64{1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SetStatus(order.ID, models.StatusReady); err != nil {
		t.Fatalf("set status: %v", err)
	}

	reverted, err := svc.Revert(order.ID)
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if reverted.Status != models.StatusPending || reverted.PrevStatus != "" {
		t.Fatalf("revert must restore pending and clear the previous status, got %+v", reverted)
	}

	if _, err := svc.Revert(order.ID); !errors.Is(err, ErrNothingToRevert) {
		t.Fatalf("second revert must fail, got %v", err)
	}
}

func TestOrderIDsUnique(t *testing.T) {
	svc, _ := newTestService(t)

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		order, err := svc.Create(1, []int64{1})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[order.ID] {
			t.Fatalf("order id %d reused", order.ID)
		}
		seen[order.ID] = true
	}
}
