package models

import (
	"errors"

	"gorm.io/gorm"
)

// ProductsRepository runs all product reads and writes over an injected
// session; there is no package-level database state.
type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Create inserts the product as a new record and lets the store assign its
// ID. Required-field violations fail before the store is touched.
func (r *ProductsRepository) Create(p *Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.Create(p).Error
}

// Update persists the current field values over the record keyed by ID.
// A transient product (zero ID) is a validation error, not an insert.
func (r *ProductsRepository) Update(p *Product) error {
	if p.ID == 0 {
		return &DataValidationError{Field: "id", Reason: "update called with missing id"}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.Save(p).Error
}

// Delete removes the record keyed by the product's ID.
func (r *ProductsRepository) Delete(p *Product) error {
	return r.db.Delete(p).Error
}

// All returns every product; an empty store yields an empty slice.
func (r *ProductsRepository) All() ([]Product, error) {
	var products []Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Find returns the product with the given ID, or ErrProductNotFound.
func (r *ProductsRepository) Find(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

func (r *ProductsRepository) FindByName(name string) ([]Product, error) {
	var products []Product
	if err := r.db.Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) FindByAvailability(available bool) ([]Product, error) {
	var products []Product
	if err := r.db.Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) FindByCategory(category Category) ([]Product, error) {
	var products []Product
	if err := r.db.Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByPrice matches an exact price. Both the decimal type and its
// textual form are accepted; malformed text is a validation error.
func (r *ProductsRepository) FindByPrice(price any) ([]Product, error) {
	normalized, err := toDecimal(price)
	if err != nil {
		return nil, &DataValidationError{Field: "price", Reason: err.Error()}
	}
	var products []Product
	if err := r.db.Where("price = ?", normalized).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
