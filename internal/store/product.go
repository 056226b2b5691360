package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storedesk/internal/models"
)

// UpdateProductParams carries the fields of a partial product update.
// Values arriving here are expected to have passed entity validation;
// the table's CHECK constraints are the backstop for anything that
// skipped it, and such violations surface as plain storage errors.
type UpdateProductParams struct {
	Name  *string
	Price *float64
	Stock *int
}

func (p UpdateProductParams) changes() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Price != nil {
		m["price"] = *p.Price
	}
	if p.Stock != nil {
		m["stock"] = *p.Stock
	}
	return m
}

// InsertProduct appends a row. The generated id is written back into p.
func (s *Store) InsertProduct(p *models.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// LoadProducts returns all products in storage order.
func (s *Store) LoadProducts() ([]models.Product, error) {
	var out []models.Product
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return out, nil
}

// SearchProducts returns products whose name contains q,
// case-insensitively. An empty q returns everything.
func (s *Store) SearchProducts(q string) ([]models.Product, error) {
	if q == "" {
		return s.LoadProducts()
	}
	var out []models.Product
	err := s.db.Where("lower(name) LIKE lower(?)", "%"+q+"%").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return out, nil
}

// Products returns (id, name) pairs for selection lists.
func (s *Store) Products() ([]models.NameRef, error) {
	var out []models.NameRef
	if err := s.db.Model(&models.Product{}).Select("id, name").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// ProductID returns the id of the first product with exactly this
// name; see ClientID for the duplicate-name caveat.
func (s *Store) ProductID(name string) (uint, bool, error) {
	var ref models.NameRef
	err := s.db.Model(&models.Product{}).Select("id, name").Where("name = ?", name).Take(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup product %q: %w", name, err)
	}
	return ref.ID, true, nil
}

// UpdateProduct applies a partial update; see UpdateClient for the
// no-op semantics.
func (s *Store) UpdateProduct(id uint, p UpdateProductParams) error {
	m := p.changes()
	if len(m) == 0 {
		return nil
	}
	if err := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(m).Error; err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

// DeleteProduct removes the row if present; missing ids are a silent
// no-op and referencing orders stay behind.
func (s *Store) DeleteProduct(id uint) error {
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}
