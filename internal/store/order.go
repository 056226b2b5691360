package store

import (
	"fmt"

	"storedesk/internal/models"
)

const loadOrdersSQL = `
SELECT o.id AS id,
       c.name AS client_name,
       p.name AS product_name,
       o.quantity AS quantity,
       o.order_date AS order_date
FROM orders o
JOIN clients c ON o.client_id = c.id
JOIN products p ON o.product_id = p.id`

// UpdateOrderParams carries the fields of a partial order update.
type UpdateOrderParams struct {
	ClientID  *uint
	ProductID *uint
	Quantity  *int
	OrderDate *string
}

func (p UpdateOrderParams) changes() map[string]any {
	m := map[string]any{}
	if p.ClientID != nil {
		m["client_id"] = *p.ClientID
	}
	if p.ProductID != nil {
		m["product_id"] = *p.ProductID
	}
	if p.Quantity != nil {
		m["quantity"] = *p.Quantity
	}
	if p.OrderDate != nil {
		m["order_date"] = *p.OrderDate
	}
	return m
}

// InsertOrder appends a row. Existence of the referenced client and
// product is not checked.
func (s *Store) InsertOrder(o *models.Order) error {
	if err := s.db.Create(o).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// LoadOrders returns all orders joined with client and product names.
// Inner join: orders whose client or product was deleted are excluded,
// though their rows still exist in the orders table.
func (s *Store) LoadOrders() ([]models.OrderRow, error) {
	var out []models.OrderRow
	if err := s.db.Raw(loadOrdersSQL).Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return out, nil
}

// UpdateOrder applies a partial update; see UpdateClient for the no-op
// semantics.
func (s *Store) UpdateOrder(id uint, p UpdateOrderParams) error {
	m := p.changes()
	if len(m) == 0 {
		return nil
	}
	if err := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(m).Error; err != nil {
		return fmt.Errorf("update order %d: %w", id, err)
	}
	return nil
}

// DeleteOrder removes the row if present; missing ids are a silent no-op.
func (s *Store) DeleteOrder(id uint) error {
	if err := s.db.Delete(&models.Order{}, id).Error; err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}
