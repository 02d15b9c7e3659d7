package user

import "context"

type UserRepository interface {
	// GetByEmail retrieves a user by email, with the linked employee ID attached
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID, with the linked employee ID attached
	GetByID(ctx context.Context, id string) (User, error)
}
