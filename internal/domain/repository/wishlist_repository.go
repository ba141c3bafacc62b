package repository

import (
	"context"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
)

// WishlistRepository defines the interface for wishlist persistence.
type WishlistRepository interface {
	// Create persists the wishlist and its item links in one transaction.
	Create(ctx context.Context, wl *entity.Wishlist, itemIDs []string) error
	// GetByID loads a wishlist with its items.
	GetByID(ctx context.Context, id string) (*entity.Wishlist, error)
	List(ctx context.Context, limit int) ([]entity.Wishlist, error)
	// Update persists name, description and image; when itemIDs is non-nil
	// the item links are replaced as well.
	Update(ctx context.Context, wl *entity.Wishlist, itemIDs []string) error
	Delete(ctx context.Context, id string) error
}
