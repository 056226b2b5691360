package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storedesk/internal/db"
	"storedesk/internal/entity"
	"storedesk/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return store.New(gdb)
}

func TestDemo(t *testing.T) {
	st := newTestStore(t)
	now := time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Demo(st, 25, rand.New(rand.NewSource(1)), now))

	clients, err := st.LoadClients()
	require.NoError(t, err)
	assert.Len(t, clients, len(sampleClients))

	products, err := st.LoadProducts()
	require.NoError(t, err)
	assert.Len(t, products, len(sampleProducts))

	orders, err := st.LoadOrders()
	require.NoError(t, err)
	require.Len(t, orders, 25)

	oldest := now.AddDate(0, 0, -30)
	for _, o := range orders {
		assert.GreaterOrEqual(t, o.Quantity, 1)
		assert.LessOrEqual(t, o.Quantity, 10)
		d, err := time.Parse(entity.DateLayout, o.OrderDate)
		require.NoError(t, err)
		assert.False(t, d.After(now), "date %s after now", o.OrderDate)
		assert.False(t, d.Before(oldest.Truncate(24*time.Hour)), "date %s before window", o.OrderDate)
	}
}

func TestDemoDoesNotDuplicateSamples(t *testing.T) {
	st := newTestStore(t)
	now := time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Demo(st, 5, rand.New(rand.NewSource(1)), now))
	require.NoError(t, Demo(st, 5, rand.New(rand.NewSource(2)), now))

	clients, err := st.LoadClients()
	require.NoError(t, err)
	assert.Len(t, clients, len(sampleClients), "samples inserted only into an empty store")

	orders, err := st.LoadOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 10)
}
