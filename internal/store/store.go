package store

import (
	"encoding/json"
	"fmt"
	"time"

	"tablepos/internal/models"

	bolt "go.etcd.io/bbolt"
)

// Store persists the register state in a single local bbolt file. Each
// collection lives under its own key as one JSON entry, but every Update
// commits all touched keys in one transaction, so multi-collection moves
// (payment: orders shrink, history grows) are atomic.
type Store struct {
	db *bolt.DB
}

// State is the full persisted register state. Update callbacks mutate it
// in place; the store writes it back on commit.
type State struct {
	Orders           []models.Order
	History          []models.HistoryRecord
	MenuItems        []models.MenuItem
	Tables           []models.Table
	CustomCategories []string
	NextItemID       int64
}

var bucketState = []byte("state")

const (
	keyOrders           = "orders"
	keyHistory          = "history"
	keyMenuItems        = "menuItems"
	keyTables           = "tables"
	keyCustomCategories = "customCategories"
	keyNextItemID       = "nextItemId"
)

// Open opens (creating if needed) the store file and seeds the default
// catalog on first use.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.seed(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seed() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketState) != nil {
			return nil
		}
		bucket, err := tx.CreateBucket(bucketState)
		if err != nil {
			return fmt.Errorf("create state bucket: %w", err)
		}
		return saveState(bucket, defaultState())
	})
}

// View runs fn against a read-only snapshot of the state.
func (s *Store) View(fn func(st *State) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		st, err := loadState(tx.Bucket(bucketState))
		if err != nil {
			return err
		}
		return fn(st)
	})
}

// Update loads the state, applies fn and writes the whole state back in the
// same transaction. If fn returns an error nothing is written.
func (s *Store) Update(fn func(st *State) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		st, err := loadState(bucket)
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		return saveState(bucket, st)
	})
}

func loadState(bucket *bolt.Bucket) (*State, error) {
	st := &State{}
	for key, target := range map[string]any{
		keyOrders:           &st.Orders,
		keyHistory:          &st.History,
		keyMenuItems:        &st.MenuItems,
		keyTables:           &st.Tables,
		keyCustomCategories: &st.CustomCategories,
		keyNextItemID:       &st.NextItemID,
	} {
		raw := bucket.Get([]byte(key))
		if raw == nil {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return st, nil
}

func saveState(bucket *bolt.Bucket, st *State) error {
	for key, value := range map[string]any{
		keyOrders:           st.Orders,
		keyHistory:          st.History,
		keyMenuItems:        st.MenuItems,
		keyTables:           st.Tables,
		keyCustomCategories: st.CustomCategories,
		keyNextItemID:       st.NextItemID,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if err := bucket.Put([]byte(key), raw); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
	}
	return nil
}

// Orders returns a copy of the active orders collection.
func (s *Store) Orders() ([]models.Order, error) {
	var out []models.Order
	err := s.View(func(st *State) error {
		out = st.Orders
		return nil
	})
	return out, err
}

// History returns a copy of the transaction history.
func (s *Store) History() ([]models.HistoryRecord, error) {
	var out []models.HistoryRecord
	err := s.View(func(st *State) error {
		out = st.History
		return nil
	})
	return out, err
}

// MenuItems returns the current menu.
func (s *Store) MenuItems() ([]models.MenuItem, error) {
	var out []models.MenuItem
	err := s.View(func(st *State) error {
		out = st.MenuItems
		return nil
	})
	return out, err
}

// Tables returns the table list.
func (s *Store) Tables() ([]models.Table, error) {
	var out []models.Table
	err := s.View(func(st *State) error {
		out = st.Tables
		return nil
	})
	return out, err
}

// CustomCategories returns the user-defined category names.
func (s *Store) CustomCategories() ([]string, error) {
	var out []string
	err := s.View(func(st *State) error {
		out = st.CustomCategories
		return nil
	})
	return out, err
}
