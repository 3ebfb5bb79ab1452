package db

import (
	"context"
	"errors"
	"fmt"

	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) ports.IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) Create(ctx context.Context, user models.User) (int64, error) {
	q := `INSERT INTO users (login, role, password_hash) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	row := ur.db.pool.QueryRow(ctx, q, user.Login, user.Role, user.PasswordHash)
	if err := row.Scan(&id); err != nil {
		// Check if it's a Postgres unique violation
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, myerrors.ErrLoginTaken
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	return id, nil
}

func (ur *UserRepo) GetByLogin(ctx context.Context, login string) (models.User, error) {
	q := `
		SELECT
			u.id,
			u.login,
			u.role,
			u.password_hash,
			u.created_at
		FROM
			users u
		WHERE
			u.login = $1
	`

	var u models.User
	err := ur.db.pool.QueryRow(ctx, q, login).Scan(
		&u.ID,
		&u.Login,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, myerrors.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	return u, nil
}
