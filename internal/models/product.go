package models

// Product is a row in the products table. The CHECK constraints back up
// the entity-level rules for writes that bypass the entities entirely.
type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255;not null" json:"name"`
	Price float64 `gorm:"not null;check:price >= 0" json:"price"`
	Stock int     `gorm:"not null;check:stock >= 0" json:"stock"`
}
