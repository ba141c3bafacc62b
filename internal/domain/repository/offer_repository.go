package repository

import (
	"context"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
)

// OfferRepository defines the interface for offer (pledge) persistence.
type OfferRepository interface {
	// Create inserts the offer and raises the target wish's raised total in
	// one transaction. The wish row is locked for the duration and the
	// funding invariants are re-validated against the locked row, so two
	// concurrent pledges can never jointly over-fund a wish. It returns the
	// wish with its updated raised amount, or apperr.ErrWishNotFound,
	// apperr.ErrConflictCreateOwnWishOffer or apperr.ErrTooMuchMoney.
	Create(ctx context.Context, o *entity.Offer) (*entity.Wish, error)
	// GetByID loads an offer with its pledger.
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	List(ctx context.Context, limit int) ([]entity.Offer, error)
	// ListByItem loads a wish's offers with their pledgers, newest first.
	ListByItem(ctx context.Context, itemID string) ([]entity.Offer, error)
}
