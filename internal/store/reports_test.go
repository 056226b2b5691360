package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storedesk/internal/models"
)

func TestReportScenario(t *testing.T) {
	s := newTestStore(t)
	a := mustInsertClient(t, s, "A", "a@a.com", "12345678", "x")
	b := mustInsertClient(t, s, "B", "b@b.com", "12345678", "x")
	widget := mustInsertProduct(t, s, "Widget", 10.0, 5)
	mustInsertOrder(t, s, a, widget, 1, "2025-08-01")
	mustInsertOrder(t, s, b, widget, 2, "2025-08-01")

	top, err := s.TopClients()
	require.NoError(t, err)
	require.Len(t, top, 2)
	counts := map[uint]int{}
	for _, row := range top {
		counts[row.ClientID] = row.OrderCount
	}
	assert.Equal(t, map[uint]int{a: 1, b: 1}, counts)

	trend, err := s.OrderTrend()
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.Equal(t, models.TrendPoint{OrderDate: "2025-08-01", OrderCount: 2}, trend[0])

	pairs, err := s.ClientProductPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.Equal(t, "Widget", p.ProductName)
	}
}

func TestTopClientsIncludesZeroOrderClientsAndCapsAtFive(t *testing.T) {
	s := newTestStore(t)
	product := mustInsertProduct(t, s, "Widget", 10.0, 5)

	names := []string{"A", "B", "C", "D", "E", "F"}
	ids := make([]uint, len(names))
	for i, n := range names {
		ids[i] = mustInsertClient(t, s, n, n+"@mail.com", "12345678", "x")
	}
	// A gets three orders, B one, everyone else none.
	for i := 0; i < 3; i++ {
		mustInsertOrder(t, s, ids[0], product, 1, "2025-08-01")
	}
	mustInsertOrder(t, s, ids[1], product, 1, "2025-08-02")

	top, err := s.TopClients()
	require.NoError(t, err)
	require.Len(t, top, 5, "six clients exist but the report caps at five")

	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, 3, top[0].OrderCount)
	assert.Equal(t, "B", top[1].Name)
	assert.Equal(t, 1, top[1].OrderCount)
	// The remaining slots belong to zero-order clients.
	for _, row := range top[2:] {
		assert.Equal(t, 0, row.OrderCount)
	}
}

func TestOrderTrendAscendingDates(t *testing.T) {
	s := newTestStore(t)
	c := mustInsertClient(t, s, "A", "a@a.com", "12345678", "x")
	p := mustInsertProduct(t, s, "Widget", 10.0, 5)
	mustInsertOrder(t, s, c, p, 1, "2025-08-03")
	mustInsertOrder(t, s, c, p, 1, "2025-08-01")
	mustInsertOrder(t, s, c, p, 1, "2025-08-01")

	trend, err := s.OrderTrend()
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, models.TrendPoint{OrderDate: "2025-08-01", OrderCount: 2}, trend[0])
	assert.Equal(t, models.TrendPoint{OrderDate: "2025-08-03", OrderCount: 1}, trend[1])
}

func TestClientProductPairsKeepDuplicates(t *testing.T) {
	s := newTestStore(t)
	c := mustInsertClient(t, s, "A", "a@a.com", "12345678", "x")
	p := mustInsertProduct(t, s, "Widget", 10.0, 5)
	mustInsertOrder(t, s, c, p, 1, "2025-08-01")
	mustInsertOrder(t, s, c, p, 2, "2025-08-02")

	pairs, err := s.ClientProductPairs()
	require.NoError(t, err)
	assert.Len(t, pairs, 2, "one pair per order row, reorders included")
}

func TestClientLinks(t *testing.T) {
	s := newTestStore(t)
	a := mustInsertClient(t, s, "A", "a@a.com", "12345678", "x")
	b := mustInsertClient(t, s, "B", "b@b.com", "12345678", "x")
	c := mustInsertClient(t, s, "C", "c@c.com", "12345678", "x")
	widget := mustInsertProduct(t, s, "Widget", 10.0, 5)
	gadget := mustInsertProduct(t, s, "Gadget", 20.0, 2)
	gizmo := mustInsertProduct(t, s, "Gizmo", 5.0, 9)

	// A and B share widget and gadget; C ordered only gizmo.
	mustInsertOrder(t, s, a, widget, 1, "2025-08-01")
	mustInsertOrder(t, s, a, gadget, 1, "2025-08-01")
	mustInsertOrder(t, s, b, widget, 1, "2025-08-02")
	mustInsertOrder(t, s, b, gadget, 1, "2025-08-02")
	mustInsertOrder(t, s, c, gizmo, 1, "2025-08-02")

	links, err := s.ClientLinks()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, models.ClientLink{ClientA: "A", ClientB: "B", SharedProducts: 2}, links[0])
}

func TestClientLinksCountDistinctProducts(t *testing.T) {
	s := newTestStore(t)
	a := mustInsertClient(t, s, "A", "a@a.com", "12345678", "x")
	b := mustInsertClient(t, s, "B", "b@b.com", "12345678", "x")
	widget := mustInsertProduct(t, s, "Widget", 10.0, 5)

	// Repeat orders of the same product still count as one shared product.
	mustInsertOrder(t, s, a, widget, 1, "2025-08-01")
	mustInsertOrder(t, s, a, widget, 1, "2025-08-02")
	mustInsertOrder(t, s, b, widget, 1, "2025-08-03")

	links, err := s.ClientLinks()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, 1, links[0].SharedProducts)
}

func TestReportsOnEmptyStore(t *testing.T) {
	s := newTestStore(t)

	top, err := s.TopClients()
	require.NoError(t, err)
	assert.Empty(t, top)

	trend, err := s.OrderTrend()
	require.NoError(t, err)
	assert.Empty(t, trend)

	pairs, err := s.ClientProductPairs()
	require.NoError(t, err)
	assert.Empty(t, pairs)

	links, err := s.ClientLinks()
	require.NoError(t, err)
	assert.Empty(t, links)
}
