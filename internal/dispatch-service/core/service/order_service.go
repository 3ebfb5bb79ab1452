package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo-dispatch/internal/dispatch-service/core/domain/dto"
	messagebrokerdto "cargo-dispatch/internal/dispatch-service/core/domain/message_broker_dto"
	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/ports"
	"cargo-dispatch/internal/mylogger"
)

const orderExchangeName = "order_topic"

type OrderService struct {
	orderRepo ports.IOrderRepo
	broker    ports.IOrderBroker
	mylog     mylogger.Logger
}

func NewOrderService(orderRepo ports.IOrderRepo, broker ports.IOrderBroker, mylog mylogger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		broker:    broker,
		mylog:     mylog,
	}
}

func (os *OrderService) Create(ctx context.Context, req dto.OrderCreateRequest, claims models.TokenClaims) (int64, error) {
	mylog := os.mylog.Action("CreateOrder")

	order := models.Order{
		Title:           req.Title,
		AddressFrom:     req.AddressFrom,
		AddressTo:       req.AddressTo,
		Description:     req.Description,
		RequiredLoaders: req.RequiredLoaders,
		Rigging:         req.Rigging,
		Disassembly:     req.Disassembly,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}

	id, err := os.orderRepo.Create(ctx, order)
	if err != nil {
		if errors.Is(err, myerrors.ErrOrderExists) {
			mylog.Warn("Failed to create order, duplicate title and description")
			return 0, err
		}
		mylog.Error("Failed to save order in db", err)
		return 0, fmt.Errorf("cannot save order in db: %w", err)
	}

	os.publishEvent(ctx, messagebrokerdto.OrderEvent{
		Event:      messagebrokerdto.OrderCreatedKey,
		OrderID:    id,
		Title:      req.Title,
		OccurredAt: time.Now(),
	})

	mylog.Info("Order created successfully")
	return id, nil
}

func (os *OrderService) Available(ctx context.Context) (dto.OrderListResponse, error) {
	orders, err := os.orderRepo.ListAvailable(ctx)
	if err != nil {
		os.mylog.Action("AvailableOrders").Error("Failed to list available orders", err)
		return dto.OrderListResponse{}, err
	}
	return dto.OrderListResponseFromModels(orders), nil
}

func (os *OrderService) Mine(ctx context.Context, claims models.TokenClaims) (dto.OrderListResponse, error) {
	orders, err := os.orderRepo.ListByDriver(ctx, claims.UserID)
	if err != nil {
		os.mylog.Action("MyOrders").Error("Failed to list driver orders", err)
		return dto.OrderListResponse{}, err
	}
	return dto.OrderListResponseFromModels(orders), nil
}

// Take assigns the order to the calling driver. The repository performs a
// single conditional update, so two concurrent claimants can never both
// succeed; the loser observes ErrOrderTaken.
func (os *OrderService) Take(ctx context.Context, orderID int64, claims models.TokenClaims) error {
	mylog := os.mylog.Action("TakeOrder")

	if err := os.orderRepo.Claim(ctx, orderID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, myerrors.ErrOrderNotFound):
			mylog.Warn("Failed to take order, order not found")
		case errors.Is(err, myerrors.ErrOrderTaken):
			mylog.Warn("Failed to take order, already taken")
		default:
			mylog.Error("Failed to take order", err)
		}
		return err
	}

	os.publishEvent(ctx, messagebrokerdto.OrderEvent{
		Event:      messagebrokerdto.OrderClaimedKey,
		OrderID:    orderID,
		DriverID:   claims.UserID,
		OccurredAt: time.Now(),
	})

	mylog.Info("Order has been taken")
	return nil
}

func (os *OrderService) Remove(ctx context.Context, orderID int64, claims models.TokenClaims) error {
	mylog := os.mylog.Action("RemoveOrder")

	if err := os.orderRepo.Remove(ctx, orderID, claims.UserID); err != nil {
		if errors.Is(err, myerrors.ErrOrderNotFound) {
			mylog.Warn("Failed to remove order, not found or not owned")
			return err
		}
		mylog.Error("Failed to remove order", err)
		return err
	}

	os.publishEvent(ctx, messagebrokerdto.OrderEvent{
		Event:      messagebrokerdto.OrderRemovedKey,
		OrderID:    orderID,
		DriverID:   claims.UserID,
		OccurredAt: time.Now(),
	})

	mylog.Info("Order has been removed")
	return nil
}

// publishEvent is best effort: a broker outage must never fail the request
// that produced the event.
func (os *OrderService) publishEvent(ctx context.Context, event messagebrokerdto.OrderEvent) {
	if os.broker == nil {
		return
	}
	if err := os.broker.PublishJSON(ctx, orderExchangeName, event.Event, event); err != nil {
		os.mylog.Action("publish").Error("failed to publish order event", err)
	}
}
