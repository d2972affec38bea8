package models

import "fmt"

// Category classifies a product.
// It is stored and serialized by name, so the member set doubles as the
// wire representation.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

var categories = []Category{
	CategoryUnknown,
	CategoryCloths,
	CategoryFood,
	CategoryHousewares,
	CategoryAutomotive,
	CategoryTools,
}

// Categories returns every member of the enumeration.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid reports whether c is a member of the enumeration.
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category by name. An unrecognized name yields a
// DataValidationError rather than a raw lookup failure.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.IsValid() {
		return CategoryUnknown, &DataValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category name %q", name),
		}
	}
	return c, nil
}
