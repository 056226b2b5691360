// Package export serializes store row sets to CSV with a header row
// matching the displayed column labels. Pure formatting, no storage
// access.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"storedesk/internal/models"
)

func write(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteClients writes the client table.
func WriteClients(w io.Writer, rows []models.Client) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{formatID(r.ID), r.Name, r.Email, r.Phone, r.Address})
	}
	return write(w, []string{"id", "name", "email", "phone", "address"}, records)
}

// WriteProducts writes the product table.
func WriteProducts(w io.Writer, rows []models.Product) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{formatID(r.ID), r.Name, formatPrice(r.Price), strconv.Itoa(r.Stock)})
	}
	return write(w, []string{"id", "name", "price", "stock"}, records)
}

// WriteOrders writes the joined order listing.
func WriteOrders(w io.Writer, rows []models.OrderRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{formatID(r.ID), r.ClientName, r.ProductName, strconv.Itoa(r.Quantity), r.OrderDate})
	}
	return write(w, []string{"id", "client", "product", "quantity", "order_date"}, records)
}

// WriteTopClients writes the top-clients report.
func WriteTopClients(w io.Writer, rows []models.ClientOrderCount) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{formatID(r.ClientID), r.Name, strconv.Itoa(r.OrderCount)})
	}
	return write(w, []string{"client_id", "name", "order_count"}, records)
}

// WriteTrend writes the per-date order counts.
func WriteTrend(w io.Writer, rows []models.TrendPoint) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.OrderDate, strconv.Itoa(r.OrderCount)})
	}
	return write(w, []string{"order_date", "order_count"}, records)
}

// WritePairs writes the bipartite client/product pairs.
func WritePairs(w io.Writer, rows []models.ClientProductPair) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.ClientName, r.ProductName})
	}
	return write(w, []string{"client", "product"}, records)
}

// WriteLinks writes the shared-product client links.
func WriteLinks(w io.Writer, rows []models.ClientLink) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.ClientA, r.ClientB, strconv.Itoa(r.SharedProducts)})
	}
	return write(w, []string{"client_a", "client_b", "shared_products"}, records)
}
