package models

// Query projections. These never map to tables of their own; they are
// scan targets for the store's joined and aggregate queries.

// NameRef is an (id, name) pair used to populate selection lists.
type NameRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// OrderRow is one row of the joined order listing.
type OrderRow struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	OrderDate   string `json:"order_date"`
}

// ClientOrderCount is one row of the top-clients report.
type ClientOrderCount struct {
	ClientID   uint   `json:"client_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
}

// TrendPoint is the number of orders placed on one date.
type TrendPoint struct {
	OrderDate  string `json:"order_date"`
	OrderCount int    `json:"order_count"`
}

// ClientProductPair is one edge of the bipartite client/product graph,
// one per order row; the same pair repeats if a client reordered.
type ClientProductPair struct {
	ClientName  string `json:"client_name"`
	ProductName string `json:"product_name"`
}

// ClientLink is one edge of the client graph: two clients that ordered
// at least one product in common, weighted by how many they share.
type ClientLink struct {
	ClientA        string `json:"client_a"`
	ClientB        string `json:"client_b"`
	SharedProducts int    `json:"shared_products"`
}
