package entity

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-]{7,15}$`)
)

// Client is a validated client record. Fields are unexported: a Client
// either came through NewClient with every rule satisfied, or it does
// not exist. Persisted fields change only through the store's partial
// update, never on the value itself.
type Client struct {
	name    string
	email   string
	phone   string
	address string
}

// NewClient validates all fields and returns the client, or a
// *ValidationError naming the first field that failed.
func NewClient(name, email, phone, address string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, valueErr("name", "must not be empty")
	}
	if !emailPattern.MatchString(email) {
		return nil, valueErr("email", fmt.Sprintf("invalid email: %s", email))
	}
	if !phonePattern.MatchString(phone) {
		return nil, valueErr("phone", fmt.Sprintf("invalid phone number: %s", phone))
	}
	if strings.TrimSpace(address) == "" {
		return nil, valueErr("address", "must not be empty")
	}
	return &Client{name: name, email: email, phone: phone, address: address}, nil
}

func (c *Client) Name() string    { return c.name }
func (c *Client) Email() string   { return c.email }
func (c *Client) Phone() string   { return c.phone }
func (c *Client) Address() string { return c.address }

func (c *Client) String() string {
	return fmt.Sprintf("Client(name='%s', email='%s', phone='%s', address='%s')",
		c.name, c.email, c.phone, c.address)
}
