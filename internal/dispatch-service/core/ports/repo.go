package ports

import (
	"context"

	"cargo-dispatch/internal/dispatch-service/core/domain/models"
)

type IUserRepo interface {
	// Create persists a new user and returns its id. Returns
	// myerrors.ErrLoginTaken when the login is already registered.
	Create(ctx context.Context, user models.User) (int64, error)
	// GetByLogin returns myerrors.ErrInvalidCredentials when no user
	// with the given login exists.
	GetByLogin(ctx context.Context, login string) (models.User, error)
}

type IOrderRepo interface {
	// Create persists a new unclaimed order and returns its id. Returns
	// myerrors.ErrOrderExists when an order with the same (title,
	// description) pair already exists.
	Create(ctx context.Context, order models.Order) (int64, error)
	ListAvailable(ctx context.Context) ([]models.Order, error)
	ListByDriver(ctx context.Context, driverID int64) ([]models.Order, error)
	// Claim atomically assigns the order to the driver. The conditional
	// update must only succeed while driver_id is still unset, so at most
	// one of any number of concurrent claimants wins. Returns
	// myerrors.ErrOrderNotFound or myerrors.ErrOrderTaken otherwise.
	Claim(ctx context.Context, orderID, driverID int64) error
	// Remove deletes the order only when it belongs to the driver.
	// Existence and ownership are checked as one condition; both
	// failures surface as myerrors.ErrOrderNotFound.
	Remove(ctx context.Context, orderID, driverID int64) error
}
