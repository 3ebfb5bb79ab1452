package models

import "time"

// Order is a moving/delivery job. DriverID is nil while the order is still
// available; it is set exactly once when a driver takes the order.
type Order struct {
	ID              int64
	Title           string
	AddressFrom     string
	AddressTo       string
	Description     string
	RequiredLoaders int
	Rigging         bool
	Disassembly     bool
	Latitude        float64
	Longitude       float64
	DriverID        *int64
	CreatedAt       time.Time
}

// Available reports whether the order has no assigned driver yet.
func (o Order) Available() bool {
	return o.DriverID == nil
}
