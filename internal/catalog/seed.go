package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed loads the sample menu. It is a no-op when categories already exist,
// so the endpoint backing it can be called repeatedly.
func Seed(ctx context.Context, repo Repository) (bool, error) {
	n, err := repo.CountCategories(ctx)
	if err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	categories := []Category{
		{Name: "Pizza", Description: "Our delicious handcrafted pizzas", SortOrder: 1, ImageURL: "https://images.unsplash.com/photo-1593504049359-74330189a345"},
		{Name: "Pasta", Description: "Authentic Italian pasta dishes", SortOrder: 2, ImageURL: "https://images.unsplash.com/photo-1563245738-9169ff58eccf"},
		{Name: "Calzone", Description: "Stuffed pizza pockets", SortOrder: 3},
		{Name: "Wings", Description: "Crispy chicken wings", SortOrder: 4},
		{Name: "Salads", Description: "Fresh garden salads", SortOrder: 5},
		{Name: "Desserts", Description: "Sweet treats", SortOrder: 6},
	}
	byName := make(map[string]string, len(categories))
	for i := range categories {
		categories[i].ID = uuid.NewString()
		categories[i].IsActive = true
		byName[categories[i].Name] = categories[i].ID
		if err := repo.CreateCategory(ctx, &categories[i]); err != nil {
			return false, fmt.Errorf("seed category %s: %w", categories[i].Name, err)
		}
	}

	pizzaSizes := func(s, m, l, xl string) []Size {
		return []Size{
			{Name: `Small 10"`, Price: price(s)},
			{Name: `Medium 12"`, Price: price(m)},
			{Name: `Large 14"`, Price: price(l)},
			{Name: `X-Large 16"`, Price: price(xl)},
		}
	}

	products := []Product{
		{
			Name:        "Buffalo Chicken Pizza",
			Description: "Spicy buffalo chicken with red onions and mozzarella cheese",
			CategoryID:  byName["Pizza"],
			Price:       price("18.95"),
			ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38",
			Ingredients: []string{"Buffalo chicken", "Red onions", "Mozzarella cheese", "Buffalo sauce"},
			Sizes:       pizzaSizes("14.95", "16.95", "18.95", "20.95"),
			IsFeatured:  true,
		},
		{
			Name:        "NY Cheese Pizza",
			Description: "Classic New York style cheese pizza with our signature sauce",
			CategoryID:  byName["Pizza"],
			Price:       price("12.95"),
			ImageURL:    "https://images.unsplash.com/photo-1600628421066-f6bda6a7b976",
			Ingredients: []string{"Mozzarella cheese", "Tomato sauce", "Fresh basil"},
			Sizes:       pizzaSizes("9.95", "11.95", "12.95", "15.95"),
			IsFeatured:  true,
		},
		{
			Name:        "Meat Lovers Pizza",
			Description: "Loaded with pepperoni, sausage, ham, and bacon",
			CategoryID:  byName["Pizza"],
			Price:       price("21.95"),
			Ingredients: []string{"Pepperoni", "Italian sausage", "Ham", "Bacon", "Mozzarella cheese"},
			Sizes:       pizzaSizes("17.95", "19.95", "21.95", "23.95"),
		},
		{
			Name:        "Homemade Meat Lasagna",
			Description: "Layers of pasta, meat sauce, and three cheeses",
			CategoryID:  byName["Pasta"],
			Price:       price("14.95"),
			Ingredients: []string{"Ground beef", "Pasta sheets", "Ricotta", "Mozzarella", "Parmesan"},
		},
		{
			Name:        "Chicken Marsala",
			Description: "Tender chicken breast in marsala wine sauce",
			CategoryID:  byName["Pasta"],
			Price:       price("18.95"),
			Ingredients: []string{"Chicken breast", "Marsala wine", "Mushrooms", "Cream sauce"},
		},
	}
	for i := range products {
		products[i].ID = uuid.NewString()
		products[i].IsAvailable = true
		if err := repo.CreateProduct(ctx, &products[i]); err != nil {
			return false, fmt.Errorf("seed product %s: %w", products[i].Name, err)
		}
	}
	return true, nil
}
