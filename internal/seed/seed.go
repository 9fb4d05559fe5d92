// Package seed supplies the static seed data the services are wired with
// at startup. Keeping it behind a provider makes the data an explicit
// dependency instead of something modules load lazily on first use.
package seed

import "github.com/nholm/sundial/internal/waste"

// Provider hands out the seed data sets.
type Provider interface {
	PriceTable() *waste.PriceTable
}

// Static is the built-in provider backed by compiled-in data.
type Static struct{}

// NewStatic returns the default seed provider.
func NewStatic() *Static {
	return &Static{}
}

// PriceTable returns the default ingredient price table. Names are
// normalized keys; prices are rough US grocery averages per pound or per
// item.
func (*Static) PriceTable() *waste.PriceTable {
	return waste.NewPriceTable([]waste.PriceEntry{
		{Name: "chicken", Price: 3.99},
		{Name: "chicken breast", Price: 4.99},
		{Name: "chicken thighs", Price: 3.49},
		{Name: "ground beef", Price: 5.49},
		{Name: "beef", Price: 7.99},
		{Name: "pork", Price: 4.29},
		{Name: "salmon", Price: 10.99},
		{Name: "shrimp", Price: 9.99},
		{Name: "eggs", Price: 3.50},
		{Name: "milk", Price: 3.89},
		{Name: "butter", Price: 4.49},
		{Name: "cheese", Price: 5.99},
		{Name: "yogurt", Price: 1.25},
		{Name: "cream", Price: 4.79},
		{Name: "bread", Price: 2.99},
		{Name: "rice", Price: 1.49},
		{Name: "pasta", Price: 1.79},
		{Name: "flour", Price: 0.89},
		{Name: "potatoes", Price: 1.09},
		{Name: "onion", Price: 1.19},
		{Name: "garlic", Price: 3.99},
		{Name: "tomato", Price: 2.29},
		{Name: "pepper", Price: 1.99},
		{Name: "bell pepper", Price: 1.75},
		{Name: "carrot", Price: 1.29},
		{Name: "celery", Price: 1.99},
		{Name: "broccoli", Price: 2.49},
		{Name: "spinach", Price: 3.99},
		{Name: "lettuce", Price: 2.29},
		{Name: "cucumber", Price: 1.25},
		{Name: "mushroom", Price: 3.79},
		{Name: "avocado", Price: 1.50},
		{Name: "lemon", Price: 0.79},
		{Name: "lime", Price: 0.59},
		{Name: "apple", Price: 1.89},
		{Name: "banana", Price: 0.59},
		{Name: "berries", Price: 4.99},
		{Name: "cilantro", Price: 0.99},
		{Name: "parsley", Price: 1.19},
		{Name: "basil", Price: 2.49},
		{Name: "ginger", Price: 3.49},
		{Name: "tofu", Price: 2.29},
		{Name: "beans", Price: 1.29},
		{Name: "olive oil", Price: 8.99},
	})
}
