package user

import "context"

// UserRepository defines data access methods for login profiles.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, u User) (User, error)
}
