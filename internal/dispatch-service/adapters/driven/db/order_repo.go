package db

import (
	"context"
	"errors"
	"fmt"

	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepo struct {
	db *DB
}

func NewOrderRepo(db *DB) ports.IOrderRepo {
	return &OrderRepo{
		db: db,
	}
}

const orderColumns = `
	o.id,
	o.title,
	o.address_from,
	o.address_to,
	o.description,
	o.required_loaders,
	o.rigging,
	o.disassembly,
	o.latitude,
	o.longitude,
	o.driver_id,
	o.created_at`

func (or *OrderRepo) Create(ctx context.Context, order models.Order) (int64, error) {
	q := `INSERT INTO orders (
		title,
		address_from,
		address_to,
		description,
		required_loaders,
		rigging,
		disassembly,
		latitude,
		longitude
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	var id int64
	row := or.db.pool.QueryRow(ctx, q,
		order.Title,
		order.AddressFrom,
		order.AddressTo,
		order.Description,
		order.RequiredLoaders,
		order.Rigging,
		order.Disassembly,
		order.Latitude,
		order.Longitude,
	)
	if err := row.Scan(&id); err != nil {
		// Unique violation on (title, description)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, myerrors.ErrOrderExists
		}
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	return id, nil
}

func (or *OrderRepo) ListAvailable(ctx context.Context) ([]models.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders o WHERE o.driver_id IS NULL`
	return or.list(ctx, q)
}

func (or *OrderRepo) ListByDriver(ctx context.Context, driverID int64) ([]models.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders o WHERE o.driver_id = $1`
	return or.list(ctx, q, driverID)
}

// Claim is the correctness-critical conditional update: the row is only
// touched while driver_id is still NULL, and the affected-row count tells a
// won race apart from a lost one.
func (or *OrderRepo) Claim(ctx context.Context, orderID, driverID int64) error {
	q := `UPDATE orders SET driver_id = $1 WHERE id = $2 AND driver_id IS NULL`

	ct, err := or.db.pool.Exec(ctx, q, driverID, orderID)
	if err != nil {
		return fmt.Errorf("failed to claim order: %w", err)
	}
	if ct.RowsAffected() == 1 {
		return nil
	}

	// Nothing updated: either the order never existed or somebody else
	// got there first.
	var exists bool
	err = or.db.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check order existence: %w", err)
	}
	if !exists {
		return myerrors.ErrOrderNotFound
	}
	return myerrors.ErrOrderTaken
}

func (or *OrderRepo) Remove(ctx context.Context, orderID, driverID int64) error {
	q := `DELETE FROM orders WHERE id = $1 AND driver_id = $2`

	ct, err := or.db.pool.Exec(ctx, q, orderID, driverID)
	if err != nil {
		return fmt.Errorf("failed to remove order: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return myerrors.ErrOrderNotFound
	}
	return nil
}

func (or *OrderRepo) list(ctx context.Context, q string, args ...any) ([]models.Order, error) {
	rows, err := or.db.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID,
			&o.Title,
			&o.AddressFrom,
			&o.AddressTo,
			&o.Description,
			&o.RequiredLoaders,
			&o.Rigging,
			&o.Disassembly,
			&o.Latitude,
			&o.Longitude,
			&o.DriverID,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
