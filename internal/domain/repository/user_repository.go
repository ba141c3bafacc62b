package repository

import (
	"context"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetByLogin resolves a lowercased username or email.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	// Find returns users whose username or email contains query.
	Find(ctx context.Context, query string, limit int) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
