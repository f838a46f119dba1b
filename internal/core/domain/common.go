package domain

import (
	"strings"
	"time"
)

// DefaultUnit is the unit label used when a purchase does not name one.
const DefaultUnit = "ekor"

// AuditFields holds the timestamps stored on every persisted record.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ProductKey normalizes a product name into the inventory lookup key.
func ProductKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PaymentMethod states how a purchase or sale was settled.
type PaymentMethod string

const (
	Cash   PaymentMethod = "CASH"
	Credit PaymentMethod = "CREDIT"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == Cash || m == Credit
}
