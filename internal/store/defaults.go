package store

import "tablepos/internal/models"

// defaultState is the catalog a fresh register starts with.
func defaultState() *State {
	return &State{
		MenuItems: []models.MenuItem{
			{ID: 1, Name: "Kuřecí řízek", Price: 150, Category: "main"},
			{ID: 2, Name: "Hovězí guláš", Price: 130, Category: "main"},
			{ID: 3, Name: "Pivo", Price: 35, Category: "drink"},
			{ID: 4, Name: "Kola", Price: 30, Category: "drink"},
			{ID: 5, Name: "Zmrzlina", Price: 45, Category: "dessert"},
		},
		Tables: []models.Table{
			{ID: 1, Name: "Stůl 1"},
			{ID: 2, Name: "Stůl 2"},
			{ID: 3, Name: "Stůl 3"},
			{ID: 4, Name: "Stůl 4"},
		},
		NextItemID: 6,
	}
}
