package entity

import (
	"fmt"
	"math"
	"strconv"
)

// Product keeps price and stock behind setters so that every write is
// validated, not just the ones made at construction time.
type Product struct {
	name  string
	price float64
	stock int
}

// NewProduct validates price and stock through the same setters callers
// use later, so the rules cannot drift apart.
func NewProduct(name string, price float64, stock int) (*Product, error) {
	p := &Product{name: name}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetStock(stock); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPrice rejects non-finite values and negative prices. Valid on
// every call, at any point in the product's life.
func (p *Product) SetPrice(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return typeErr("price", "must be a number")
	}
	if v < 0 {
		return valueErr("price", "must not be negative")
	}
	p.price = v
	return nil
}

// SetStock rejects negative stock counts.
func (p *Product) SetStock(v int) error {
	if v < 0 {
		return valueErr("stock", "must not be negative")
	}
	p.stock = v
	return nil
}

func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }
func (p *Product) Stock() int     { return p.stock }

func (p *Product) String() string {
	return fmt.Sprintf("Product(name='%s', price=%s, stock=%d)",
		p.name, strconv.FormatFloat(p.price, 'g', -1, 64), p.stock)
}
