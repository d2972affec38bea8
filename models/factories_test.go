package models_test

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/shoplite/products-service/models"
)

var factoryNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana", "Pots",
	"Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

// productFactory builds a transient product with randomized valid fields.
func productFactory() *models.Product {
	cats := models.Categories()
	return &models.Product{
		Name:        factoryNames[rand.Intn(len(factoryNames))],
		Description: fmt.Sprintf("A very fine %d", rand.Intn(1000)),
		Price:       decimal.NewFromFloat(0.5 + rand.Float64()*2000).Round(2),
		Available:   rand.Intn(2) == 0,
		Category:    cats[rand.Intn(len(cats))],
	}
}
