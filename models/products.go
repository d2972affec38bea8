package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// A zero ID means the product is transient; the store assigns the ID on
// create and it is stable afterwards.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Available   bool            `gorm:"not null"`
	Category    Category        `gorm:"type:varchar(32);not null"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Validate checks the required fields before any store mutation.
func (p *Product) Validate() error {
	if p.Name == "" {
		return &DataValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !p.Category.IsValid() {
		return &DataValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category name %q", string(p.Category)),
		}
	}
	return nil
}

// Serialize produces the field-name-to-value mapping exchanged with the
// API layer. Price is emitted as a 2-decimal string and category by name;
// id is included once the store has assigned one.
func (p *Product) Serialize() map[string]any {
	data := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.StringFixed(2),
		"available":   p.Available,
		"category":    string(p.Category),
	}
	if p.ID != 0 {
		data["id"] = p.ID
	}
	return data
}

// Deserialize populates the product from a mapping. Every violation is
// reported as a DataValidationError naming the offending field; an "id"
// key is ignored since identity assignment belongs to the store.
func (p *Product) Deserialize(data map[string]any) error {
	if data == nil {
		return &DataValidationError{Reason: "no data provided"}
	}

	for _, key := range []string{"name", "description", "price", "available", "category"} {
		if _, ok := data[key]; !ok {
			return &DataValidationError{Field: key, Reason: "missing required field"}
		}
	}

	name, ok := data["name"].(string)
	if !ok {
		return &DataValidationError{Field: "name", Reason: "expected a string"}
	}
	description, ok := data["description"].(string)
	if !ok {
		return &DataValidationError{Field: "description", Reason: "expected a string"}
	}
	available, ok := data["available"].(bool)
	if !ok {
		return &DataValidationError{
			Field:  "available",
			Reason: fmt.Sprintf("expected a boolean, got %T", data["available"]),
		}
	}

	categoryName, ok := data["category"].(string)
	if !ok {
		if c, isTyped := data["category"].(Category); isTyped {
			categoryName = string(c)
		} else {
			return &DataValidationError{Field: "category", Reason: "expected a string"}
		}
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	price, err := toDecimal(data["price"])
	if err != nil {
		return &DataValidationError{Field: "price", Reason: err.Error()}
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

// toDecimal normalizes the accepted price representations to the exact
// decimal type. Textual input is kept legal because the hosting API does
// not guarantee a single representation.
func toDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case string:
		return decimal.NewFromString(val)
	case json.Number:
		return decimal.NewFromString(val.String())
	case float64:
		return decimal.NewFromFloat(val), nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot convert %T to a price", v)
	}
}
