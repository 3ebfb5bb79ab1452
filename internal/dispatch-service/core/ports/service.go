package ports

import (
	"context"

	"cargo-dispatch/internal/dispatch-service/core/domain/dto"
	"cargo-dispatch/internal/dispatch-service/core/domain/models"
)

type IAuthService interface {
	Register(ctx context.Context, req dto.UserRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.UserRequest) (dto.AuthResponse, error)
}

type IOrderService interface {
	Create(ctx context.Context, req dto.OrderCreateRequest, claims models.TokenClaims) (int64, error)
	Available(ctx context.Context) (dto.OrderListResponse, error)
	Mine(ctx context.Context, claims models.TokenClaims) (dto.OrderListResponse, error)
	Take(ctx context.Context, orderID int64, claims models.TokenClaims) error
	Remove(ctx context.Context, orderID int64, claims models.TokenClaims) error
}
