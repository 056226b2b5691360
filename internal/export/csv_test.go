package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storedesk/internal/models"
)

func TestWriteClients(t *testing.T) {
	var buf bytes.Buffer
	err := WriteClients(&buf, []models.Client{
		{ID: 1, Name: "Ivan", Email: "ivan@ivanov.com", Phone: "81234567890", Address: "Moscow"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"id,name,email,phone,address\n1,Ivan,ivan@ivanov.com,81234567890,Moscow\n",
		buf.String())
}

func TestWriteClientsQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	err := WriteClients(&buf, []models.Client{
		{ID: 2, Name: "Ivan", Email: "ivan@ivanov.com", Phone: "81234567890", Address: "Moscow, Tverskaya 1"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"id,name,email,phone,address\n2,Ivan,ivan@ivanov.com,81234567890,\"Moscow, Tverskaya 1\"\n",
		buf.String())
}

func TestWriteProducts(t *testing.T) {
	var buf bytes.Buffer
	err := WriteProducts(&buf, []models.Product{
		{ID: 1, Name: "Widget", Price: 10.0, Stock: 5},
		{ID: 2, Name: "Gadget", Price: 12.5, Stock: 0},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"id,name,price,stock\n1,Widget,10,5\n2,Gadget,12.5,0\n",
		buf.String())
}

func TestWriteOrders(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOrders(&buf, []models.OrderRow{
		{ID: 7, ClientName: "A", ProductName: "Widget", Quantity: 2, OrderDate: "2025-08-01"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"id,client,product,quantity,order_date\n7,A,Widget,2,2025-08-01\n",
		buf.String())
}

func TestWriteReportsHeadersOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTopClients(&buf, nil))
	assert.Equal(t, "client_id,name,order_count\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTrend(&buf, nil))
	assert.Equal(t, "order_date,order_count\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePairs(&buf, nil))
	assert.Equal(t, "client,product\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteLinks(&buf, nil))
	assert.Equal(t, "client_a,client_b,shared_products\n", buf.String())
}
