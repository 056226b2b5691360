package entity

import (
	"strconv"
	"time"
)

// Parse helpers for the string-typed edge of the system (CLI flags,
// form fields). They classify malformed numeric input as KindType, so
// "not an integer" and "out of range" stay distinguishable for callers.

// ParseID parses a client/product/order id.
func ParseID(field, s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, typeErr(field, "must be an integer")
	}
	return uint(v), nil
}

// ParsePrice parses a price. Range checks belong to Product.SetPrice.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, typeErr("price", "must be a number")
	}
	return v, nil
}

// ParseStock parses a stock count. Range checks belong to Product.SetStock.
func ParseStock(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, typeErr("stock", "must be an integer")
	}
	return v, nil
}

// ParseQuantity parses an order quantity. Positivity is re-checked by
// NewOrder; failing here keeps the error close to the input.
func ParseQuantity(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, typeErr("quantity", "must be an integer")
	}
	if v <= 0 {
		return 0, valueErr("quantity", "must be positive")
	}
	return v, nil
}

// DateLayout is the canonical order date format.
const DateLayout = "2006-01-02"

// ParseDate normalizes a date string to YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", valueErr("order_date", "must be a date in YYYY-MM-DD form")
	}
	return t.Format(DateLayout), nil
}
