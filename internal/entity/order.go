package entity

import "fmt"

// Order references a client and a product by id. Existence of the
// referenced rows is deliberately not checked here; the store inserts
// whatever ids it is given and the joined views tolerate dangling ones.
type Order struct {
	clientID  uint
	productID uint
	quantity  int
	orderDate string
}

// NewOrder validates the quantity. The date string is stored as given;
// callers that receive dates as text should run them through ParseDate
// first.
func NewOrder(clientID, productID uint, quantity int, orderDate string) (*Order, error) {
	if quantity <= 0 {
		return nil, valueErr("quantity", "must be positive")
	}
	return &Order{
		clientID:  clientID,
		productID: productID,
		quantity:  quantity,
		orderDate: orderDate,
	}, nil
}

func (o *Order) ClientID() uint    { return o.clientID }
func (o *Order) ProductID() uint   { return o.productID }
func (o *Order) Quantity() int     { return o.quantity }
func (o *Order) OrderDate() string { return o.orderDate }

func (o *Order) String() string {
	return fmt.Sprintf("Order(client_id=%d, product_id=%d, quantity=%d, order_date='%s')",
		o.clientID, o.productID, o.quantity, o.orderDate)
}
