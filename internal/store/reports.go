package store

import (
	"fmt"
	"sort"

	"storedesk/internal/models"
)

const topClientsSQL = `
SELECT c.id AS client_id,
       c.name AS name,
       COUNT(o.id) AS order_count
FROM clients c
LEFT JOIN orders o ON o.client_id = c.id
GROUP BY c.id, c.name
ORDER BY COUNT(o.id) DESC
LIMIT 5`

const orderTrendSQL = `
SELECT o.order_date AS order_date,
       COUNT(*) AS order_count
FROM orders o
GROUP BY o.order_date
ORDER BY o.order_date`

const clientProductPairsSQL = `
SELECT c.name AS client_name,
       p.name AS product_name
FROM orders o
JOIN clients c ON o.client_id = c.id
JOIN products p ON o.product_id = p.id`

const clientProductsSQL = `
SELECT o.client_id AS client_id,
       c.name AS name,
       o.product_id AS product_id
FROM orders o
JOIN clients c ON o.client_id = c.id`

// TopClients returns up to five clients ordered by order count,
// descending. Clients with zero orders count as zero rather than being
// dropped; ties break in storage iteration order.
func (s *Store) TopClients() ([]models.ClientOrderCount, error) {
	var out []models.ClientOrderCount
	if err := s.db.Raw(topClientsSQL).Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("top clients: %w", err)
	}
	return out, nil
}

// OrderTrend returns the order count per distinct date, ascending.
func (s *Store) OrderTrend() ([]models.TrendPoint, error) {
	var out []models.TrendPoint
	if err := s.db.Raw(orderTrendSQL).Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("order trend: %w", err)
	}
	return out, nil
}

// ClientProductPairs returns one (client name, product name) pair per
// order row. Duplicates are preserved: a client that reordered the same
// product appears once per order.
func (s *Store) ClientProductPairs() ([]models.ClientProductPair, error) {
	var out []models.ClientProductPair
	if err := s.db.Raw(clientProductPairsSQL).Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("client/product pairs: %w", err)
	}
	return out, nil
}

// ClientLinks returns the edges of the client graph: every pair of
// clients that ordered at least one common product, weighted by the
// number of distinct shared products. Pairs are ordered by the lower
// client id, so the output is deterministic for a given data set.
func (s *Store) ClientLinks() ([]models.ClientLink, error) {
	var rows []struct {
		ClientID  uint
		Name      string
		ProductID uint
	}
	if err := s.db.Raw(clientProductsSQL).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("client links: %w", err)
	}

	products := map[uint]map[uint]struct{}{}
	names := map[uint]string{}
	for _, r := range rows {
		set, ok := products[r.ClientID]
		if !ok {
			set = map[uint]struct{}{}
			products[r.ClientID] = set
			names[r.ClientID] = r.Name
		}
		set[r.ProductID] = struct{}{}
	}

	ids := make([]uint, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var links []models.ClientLink
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			shared := 0
			for pid := range products[ids[i]] {
				if _, ok := products[ids[j]][pid]; ok {
					shared++
				}
			}
			if shared > 0 {
				links = append(links, models.ClientLink{
					ClientA:        names[ids[i]],
					ClientB:        names[ids[j]],
					SharedProducts: shared,
				})
			}
		}
	}
	return links, nil
}
