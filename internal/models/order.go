package models

// Order links a client to a product. The references are plain indexed
// columns, not enforced foreign keys: deleting a client or product
// leaves its orders behind with dangling ids, and the joined views drop
// those rows silently. The reports are written to tolerate this.
type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ClientID  uint   `gorm:"index" json:"client_id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	OrderDate string `gorm:"size:10;not null" json:"order_date"`
}
