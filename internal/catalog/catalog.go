// Package catalog manages the menu and its categories. Menu item ids come
// from a counter that only ever increments; category deletion is blocked
// while any menu item still uses the category.
package catalog

import (
	"errors"
	"strings"

	"tablepos/internal/models"
	"tablepos/internal/store"
)

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrInvalidMenuItem     = errors.New("name, price and category are required")
	ErrCategoryExists      = errors.New("category already exists")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInUse       = errors.New("category is used by menu items")
	ErrDuplicateCategories = errors.New("categories must have unique names")
	ErrEmptyCategory       = errors.New("category name is empty")
)

// BuiltinCategories are fixed and cannot be renamed or deleted.
var BuiltinCategories = []string{"main", "drink", "dessert"}

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Items() ([]models.MenuItem, error) {
	return s.store.MenuItems()
}

// Categories returns the built-in categories followed by the custom ones.
func (s *Service) Categories() ([]string, error) {
	custom, err := s.store.CustomCategories()
	if err != nil {
		return nil, err
	}
	return append(append([]string(nil), BuiltinCategories...), custom...), nil
}

// AddItem creates a menu item under the next counter id. The counter is
// incremented and never reused, even after deletions.
func (s *Service) AddItem(name string, price float64, category string) (models.MenuItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" || price < 0 {
		return models.MenuItem{}, ErrInvalidMenuItem
	}

	var created models.MenuItem
	err := s.store.Update(func(st *store.State) error {
		created = models.MenuItem{ID: st.NextItemID, Name: name, Price: price, Category: category}
		st.MenuItems = append(st.MenuItems, created)
		st.NextItemID++
		return nil
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return created, nil
}

// UpdateItem replaces the named fields of an existing menu item. The id is
// kept; orders that already snapshotted the item are unaffected.
func (s *Service) UpdateItem(id int64, name string, price float64, category string) (models.MenuItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" || price < 0 {
		return models.MenuItem{}, ErrInvalidMenuItem
	}

	var updated models.MenuItem
	err := s.store.Update(func(st *store.State) error {
		for i, item := range st.MenuItems {
			if item.ID == id {
				updated = models.MenuItem{ID: id, Name: name, Price: price, Category: category}
				st.MenuItems[i] = updated
				return nil
			}
		}
		return ErrMenuItemNotFound
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return updated, nil
}

func (s *Service) DeleteItem(id int64) error {
	return s.store.Update(func(st *store.State) error {
		for i, item := range st.MenuItems {
			if item.ID == id {
				st.MenuItems = append(st.MenuItems[:i], st.MenuItems[i+1:]...)
				return nil
			}
		}
		return ErrMenuItemNotFound
	})
}

// AddCategory registers a new custom category. Duplicates of built-in or
// existing custom names are rejected.
func (s *Service) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategory
	}
	return s.store.Update(func(st *store.State) error {
		if containsFold(BuiltinCategories, name) || containsFold(st.CustomCategories, name) {
			return ErrCategoryExists
		}
		st.CustomCategories = append(st.CustomCategories, name)
		return nil
	})
}

// RenameCategories replaces the whole custom category list, re-pointing
// menu items from each old name to the name now at the same position.
// The new list must keep its length and stay free of duplicates.
func (s *Service) RenameCategories(names []string) error {
	trimmed := make([]string, len(names))
	seen := make(map[string]bool, len(names)+len(BuiltinCategories))
	for _, builtin := range BuiltinCategories {
		seen[strings.ToLower(builtin)] = true
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyCategory
		}
		if seen[strings.ToLower(name)] {
			return ErrDuplicateCategories
		}
		seen[strings.ToLower(name)] = true
		trimmed[i] = name
	}

	return s.store.Update(func(st *store.State) error {
		if len(trimmed) != len(st.CustomCategories) {
			return ErrCategoryNotFound
		}
		// Re-point from a snapshot of the old names so a swap like
		// ["A","B"] -> ["B","A"] cannot sweep already-renamed items twice.
		renames := make(map[string]string, len(trimmed))
		for i, oldName := range st.CustomCategories {
			if trimmed[i] != oldName {
				renames[oldName] = trimmed[i]
			}
		}
		for j, item := range st.MenuItems {
			if newName, ok := renames[item.Category]; ok {
				st.MenuItems[j].Category = newName
			}
		}
		st.CustomCategories = trimmed
		return nil
	})
}

// DeleteCategory removes a custom category, unless a menu item still
// references it.
func (s *Service) DeleteCategory(name string) error {
	return s.store.Update(func(st *store.State) error {
		idx := -1
		for i, category := range st.CustomCategories {
			if category == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrCategoryNotFound
		}
		for _, item := range st.MenuItems {
			if item.Category == name {
				return ErrCategoryInUse
			}
		}
		st.CustomCategories = append(st.CustomCategories[:idx], st.CustomCategories[idx+1:]...)
		return nil
	})
}

func containsFold(list []string, value string) bool {
	for _, entry := range list {
		if strings.EqualFold(entry, value) {
			return true
		}
	}
	return false
}
