package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/user"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userQuery = `
	SELECT u.id, u.email, u.password_hash, u.is_admin, u.created_at, u.updated_at, e.id
	FROM users u
	LEFT JOIN employees e ON e.user_id = u.id
`

func (r *userRepositoryImpl) scanUser(row pgx.Row) (user.User, error) {
	var usr user.User
	err := row.Scan(
		&usr.ID,
		&usr.Email,
		&usr.PasswordHash,
		&usr.IsAdmin,
		&usr.CreatedAt,
		&usr.UpdatedAt,
		&usr.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	usr, err := r.scanUser(q.QueryRow(ctx, userQuery+` WHERE u.email = $1`, email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	usr, err := r.scanUser(q.QueryRow(ctx, userQuery+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return usr, nil
}
