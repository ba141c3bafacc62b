package application

import (
	"context"
	"errors"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
)

// WishlistService implements named groupings of wishes.
type WishlistService struct {
	Repo   repository.WishlistRepository
	Wishes repository.WishRepository
}

func NewWishlistService(repo repository.WishlistRepository, wishes repository.WishRepository) *WishlistService {
	return &WishlistService{Repo: repo, Wishes: wishes}
}

type CreateWishlistInput struct {
	Name        string
	Description string
	Image       string
	ItemsID     []string
}

// Create builds a wishlist from existing wishes. ItemsID must be non-empty
// and every id must resolve to a wish.
func (s *WishlistService) Create(ctx context.Context, ownerID string, in CreateWishlistInput) (*entity.Wishlist, error) {
	items, err := s.resolveItems(ctx, in.ItemsID)
	if err != nil {
		return nil, err
	}
	wl := &entity.Wishlist{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		OwnerID:     ownerID,
	}
	if err := s.Repo.Create(ctx, wl, in.ItemsID); err != nil {
		return nil, err
	}
	wl.Items = items
	return wl, nil
}

func (s *WishlistService) GetByID(ctx context.Context, id string) (*entity.Wishlist, error) {
	wl, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishlistNotFound
		}
		return nil, err
	}
	return wl, nil
}

func (s *WishlistService) List(ctx context.Context, limit int) ([]entity.Wishlist, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.List(ctx, limit)
}

type UpdateWishlistInput struct {
	Name        string
	Description string
	Image       string
	// ItemsID nil keeps the current items; non-nil replaces them.
	ItemsID []string
}

// Update edits the caller's own wishlist.
func (s *WishlistService) Update(ctx context.Context, callerID, id string, in UpdateWishlistInput) (*entity.Wishlist, error) {
	wl, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishlistNotFound
		}
		return nil, err
	}
	if wl.OwnerID != callerID {
		return nil, apperr.ErrConflictUpdateOtherWishlist
	}

	if in.ItemsID != nil {
		if _, err := s.resolveItems(ctx, in.ItemsID); err != nil {
			return nil, err
		}
	}
	if in.Name != "" {
		wl.Name = in.Name
	}
	if in.Description != "" {
		wl.Description = in.Description
	}
	if in.Image != "" {
		wl.Image = in.Image
	}

	if err := s.Repo.Update(ctx, wl, in.ItemsID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the caller's own wishlist. The wishes it references stay.
func (s *WishlistService) Delete(ctx context.Context, callerID, id string) error {
	wl, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrWishlistNotFound
		}
		return err
	}
	if wl.OwnerID != callerID {
		return apperr.ErrConflictDeleteOtherWishlist
	}
	return s.Repo.Delete(ctx, id)
}

// resolveItems checks that ids is non-empty and every id names a real wish.
func (s *WishlistService) resolveItems(ctx context.Context, ids []string) ([]entity.Wish, error) {
	if len(ids) == 0 {
		return nil, apperr.ErrEmptyItemsID
	}
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	items, err := s.Wishes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(items) < len(unique) {
		return nil, apperr.ErrWishesNotFound
	}
	return items, nil
}
