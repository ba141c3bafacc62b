package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
)

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

const wishlistColumns = `id, name, description, image, owner_id, created_at, updated_at`

func scanWishlist(row pgx.Row) (*entity.Wishlist, error) {
	wl := &entity.Wishlist{}
	if err := row.Scan(&wl.ID, &wl.Name, &wl.Description, &wl.Image, &wl.OwnerID,
		&wl.CreatedAt, &wl.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return wl, nil
}

func (r *WishlistRepository) Create(ctx context.Context, wl *entity.Wishlist, itemIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO wishlists (name, description, image, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, wl.Name, wl.Description, wl.Image, wl.OwnerID)
	if err := row.Scan(&wl.ID, &wl.CreatedAt, &wl.UpdatedAt); err != nil {
		return err
	}

	if err := insertItems(ctx, tx, wl.ID, itemIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertItems(ctx context.Context, tx pgx.Tx, wishlistID string, itemIDs []string) error {
	for _, id := range itemIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO wishlist_items (wishlist_id, wish_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, wishlistID, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *WishlistRepository) GetByID(ctx context.Context, id string) (*entity.Wishlist, error) {
	wl, err := scanWishlist(r.pool.QueryRow(ctx, `
		SELECT `+wishlistColumns+` FROM wishlists WHERE id = $1
	`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+wishColumns+` FROM wishes
		WHERE id IN (SELECT wish_id FROM wishlist_items WHERE wishlist_id = $1)
		ORDER BY created_at DESC
	`, id)
	if err != nil {
		return nil, err
	}
	items, err := collectWishes(rows)
	if err != nil {
		return nil, err
	}
	wl.Items = items
	return wl, nil
}

func (r *WishlistRepository) List(ctx context.Context, limit int) ([]entity.Wishlist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+wishlistColumns+` FROM wishlists ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Wishlist
	for rows.Next() {
		wl, err := scanWishlist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *wl)
	}
	return out, rows.Err()
}

func (r *WishlistRepository) Update(ctx context.Context, wl *entity.Wishlist, itemIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	wl.UpdatedAt = time.Now()
	res, err := tx.Exec(ctx, `
		UPDATE wishlists
		SET name = $1, description = $2, image = $3, updated_at = $4
		WHERE id = $5
	`, wl.Name, wl.Description, wl.Image, wl.UpdatedAt, wl.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if itemIDs != nil {
		if _, err := tx.Exec(ctx, `
			DELETE FROM wishlist_items WHERE wishlist_id = $1
		`, wl.ID); err != nil {
			return err
		}
		if err := insertItems(ctx, tx, wl.ID, itemIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *WishlistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.WishlistRepository = (*WishlistRepository)(nil)
