package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storedesk/internal/models"
)

// UpdateClientParams carries the fields of a partial client update.
// Nil fields are left untouched; callers set only what changes.
type UpdateClientParams struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (p UpdateClientParams) changes() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Email != nil {
		m["email"] = *p.Email
	}
	if p.Phone != nil {
		m["phone"] = *p.Phone
	}
	if p.Address != nil {
		m["address"] = *p.Address
	}
	return m
}

// InsertClient appends a row. The generated id is written back into c.
func (s *Store) InsertClient(c *models.Client) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// LoadClients returns all clients in storage order.
func (s *Store) LoadClients() ([]models.Client, error) {
	var out []models.Client
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	return out, nil
}

// SearchClients returns clients whose name, email, phone or address
// contains q, case-insensitively. An empty q returns everything.
func (s *Store) SearchClients(q string) ([]models.Client, error) {
	if q == "" {
		return s.LoadClients()
	}
	pat := "%" + q + "%"
	var out []models.Client
	err := s.db.
		Where("lower(name) LIKE lower(?) OR lower(email) LIKE lower(?) OR phone LIKE ? OR lower(address) LIKE lower(?)",
			pat, pat, pat, pat).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return out, nil
}

// Clients returns (id, name) pairs for selection lists.
func (s *Store) Clients() ([]models.NameRef, error) {
	var out []models.NameRef
	if err := s.db.Model(&models.Client{}).Select("id, name").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return out, nil
}

// ClientID returns the id of the first client with exactly this name.
// Names are not unique; with duplicates an arbitrary match is returned.
// That is a known limitation of the name-based pickers, kept as is.
func (s *Store) ClientID(name string) (uint, bool, error) {
	var ref models.NameRef
	err := s.db.Model(&models.Client{}).Select("id, name").Where("name = ?", name).Take(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup client %q: %w", name, err)
	}
	return ref.ID, true, nil
}

// UpdateClient applies a partial update. With no fields set it returns
// without touching storage; an unknown id affects zero rows and is not
// an error.
func (s *Store) UpdateClient(id uint, p UpdateClientParams) error {
	m := p.changes()
	if len(m) == 0 {
		return nil
	}
	if err := s.db.Model(&models.Client{}).Where("id = ?", id).Updates(m).Error; err != nil {
		return fmt.Errorf("update client %d: %w", id, err)
	}
	return nil
}

// DeleteClient removes the row if present. Missing ids are a silent
// no-op. Orders referencing the client are left in place.
func (s *Store) DeleteClient(id uint) error {
	if err := s.db.Delete(&models.Client{}, id).Error; err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}
