package models

// Client is a row in the clients table. No soft delete: removing a
// client is a real row delete and may strand orders that reference it.
type Client struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:50;not null" json:"phone"`
	Address string `gorm:"size:500" json:"address,omitempty"`
}
