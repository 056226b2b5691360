// Package seed fills an empty store with demo data.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"storedesk/internal/entity"
	"storedesk/internal/models"
	"storedesk/internal/store"
)

type sampleClient struct {
	name, email, phone, address string
}

var sampleClients = []sampleClient{
	{"Ivan Petrov", "ivan.petrov@mail.com", "+7 912 111-22-33", "Moscow, Arbat 10"},
	{"Anna Smirnova", "anna.smirnova@mail.com", "+7 921 444-55-66", "Saint Petersburg, Nevsky 5"},
	{"Oleg Kuznetsov", "oleg.kuznetsov@mail.com", "81237894560", "Kazan, Bauman 3"},
	{"Maria Volkova", "maria.volkova@mail.com", "+7 903 777-88-99", "Novosibirsk, Lenina 12"},
}

var sampleProducts = []struct {
	name  string
	price float64
	stock int
}{
	{"Laptop", 1500.00, 12},
	{"Phone", 700.00, 30},
	{"Headphones", 120.50, 50},
	{"Monitor", 310.00, 18},
	{"Keyboard", 45.90, 64},
}

// Demo inserts the sample clients and products if the store has none,
// then n orders with random client, product, quantity 1-10 and a date
// in the trailing 30 days. Deterministic for a seeded rand source and
// fixed clock.
func Demo(st *store.Store, n int, r *rand.Rand, now time.Time) error {
	clients, err := st.Clients()
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		for _, c := range sampleClients {
			// Run samples through the entity so broken demo data cannot ship.
			e, err := entity.NewClient(c.name, c.email, c.phone, c.address)
			if err != nil {
				return fmt.Errorf("sample client %q: %w", c.name, err)
			}
			row := models.Client{Name: e.Name(), Email: e.Email(), Phone: e.Phone(), Address: e.Address()}
			if err := st.InsertClient(&row); err != nil {
				return err
			}
		}
		if clients, err = st.Clients(); err != nil {
			return err
		}
	}

	products, err := st.Products()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		for _, p := range sampleProducts {
			e, err := entity.NewProduct(p.name, p.price, p.stock)
			if err != nil {
				return fmt.Errorf("sample product %q: %w", p.name, err)
			}
			row := models.Product{Name: e.Name(), Price: e.Price(), Stock: e.Stock()}
			if err := st.InsertProduct(&row); err != nil {
				return err
			}
		}
		if products, err = st.Products(); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		client := clients[r.Intn(len(clients))]
		product := products[r.Intn(len(products))]
		date := now.AddDate(0, 0, -r.Intn(31)).Format(entity.DateLayout)

		o, err := entity.NewOrder(client.ID, product.ID, 1+r.Intn(10), date)
		if err != nil {
			return err
		}
		row := models.Order{
			ClientID:  o.ClientID(),
			ProductID: o.ProductID(),
			Quantity:  o.Quantity(),
			OrderDate: o.OrderDate(),
		}
		if err := st.InsertOrder(&row); err != nil {
			return err
		}
	}
	return nil
}
