package repository

import (
	"context"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
)

// WishRepository defines the interface for wish-related database operations.
type WishRepository interface {
	Create(ctx context.Context, w *entity.Wish) error
	GetByID(ctx context.Context, id string) (*entity.Wish, error)
	// Update persists name, link, image, description and price.
	Update(ctx context.Context, w *entity.Wish) error
	Delete(ctx context.Context, id string) error
	// Last returns the newest wishes, created_at descending.
	Last(ctx context.Context, limit int) ([]entity.Wish, error)
	// Top returns the most copied wishes, copied descending.
	Top(ctx context.Context, limit int) ([]entity.Wish, error)
	FindByIDs(ctx context.Context, ids []string) ([]entity.Wish, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Wish, error)
	// Copy inserts a duplicate of the source wish owned by newOwnerID with
	// raised and copied reset, and increments the source's copied counter.
	// Both writes happen in one transaction.
	Copy(ctx context.Context, sourceID, newOwnerID string) (*entity.Wish, error)
}
