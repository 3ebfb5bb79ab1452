package dto

import (
	"time"

	"cargo-dispatch/internal/dispatch-service/core/domain/models"
)

// AuthRequest is the minimal guarded body: just the access token the
// middleware reads. Guarded requests with more fields embed it.
type AuthRequest struct {
	AccessToken string `json:"access_token"`
}

type OrderCreateRequest struct {
	AuthRequest
	Title           string  `json:"title"`
	AddressFrom     string  `json:"addresFrom"`
	AddressTo       string  `json:"addresTo"`
	Description     string  `json:"description"`
	RequiredLoaders int     `json:"requiredLoaders"`
	Rigging         bool    `json:"rigging"`
	Disassembly     bool    `json:"disassembly"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

type TakeOrderRequest struct {
	AuthRequest
	OrderID int64 `json:"order_id"`
}

type OrderResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	AddressFrom     string    `json:"addresFrom"`
	AddressTo       string    `json:"addresTo"`
	Description     string    `json:"description"`
	RequiredLoaders int       `json:"requiredLoaders"`
	Rigging         bool      `json:"rigging"`
	Disassembly     bool      `json:"disassembly"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DriverID        *int64    `json:"driver_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}

func OrderResponseFromModel(m models.Order) OrderResponse {
	return OrderResponse{
		ID:              m.ID,
		Title:           m.Title,
		AddressFrom:     m.AddressFrom,
		AddressTo:       m.AddressTo,
		Description:     m.Description,
		RequiredLoaders: m.RequiredLoaders,
		Rigging:         m.Rigging,
		Disassembly:     m.Disassembly,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		DriverID:        m.DriverID,
		CreatedAt:       m.CreatedAt,
	}
}

func OrderListResponseFromModels(ms []models.Order) OrderListResponse {
	orders := make([]OrderResponse, 0, len(ms))
	for _, m := range ms {
		orders = append(orders, OrderResponseFromModel(m))
	}
	return OrderListResponse{
		Orders: orders,
		Count:  len(orders),
	}
}
