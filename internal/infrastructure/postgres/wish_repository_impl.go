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

type WishRepository struct {
	pool *pgxpool.Pool
}

func NewWishRepository(pool *pgxpool.Pool) *WishRepository {
	return &WishRepository{pool: pool}
}

// Money columns are NUMERIC(10,2); they are read and written as integer
// cents so the Go side never touches floating point.
const wishColumns = `id, name, link, image, (price * 100)::bigint, (raised * 100)::bigint,
	description, copied, owner_id, created_at, updated_at`

func scanWish(row pgx.Row) (*entity.Wish, error) {
	w := &entity.Wish{}
	if err := row.Scan(&w.ID, &w.Name, &w.Link, &w.Image, &w.Price, &w.Raised,
		&w.Description, &w.Copied, &w.OwnerID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func collectWishes(rows pgx.Rows) ([]entity.Wish, error) {
	defer rows.Close()
	var out []entity.Wish
	for rows.Next() {
		w, err := scanWish(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

func (r *WishRepository) Create(ctx context.Context, w *entity.Wish) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wishes (name, link, image, price, description, owner_id)
		VALUES ($1, $2, $3, $4::bigint::numeric / 100, $5, $6)
		RETURNING id, created_at, updated_at
	`, w.Name, w.Link, w.Image, int64(w.Price), w.Description, w.OwnerID)
	return row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

func (r *WishRepository) GetByID(ctx context.Context, id string) (*entity.Wish, error) {
	return scanWish(r.pool.QueryRow(ctx, `
		SELECT `+wishColumns+` FROM wishes WHERE id = $1
	`, id))
}

func (r *WishRepository) Update(ctx context.Context, w *entity.Wish) error {
	w.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE wishes
		SET name = $1, link = $2, image = $3, price = $4::bigint::numeric / 100,
		    description = $5, updated_at = $6
		WHERE id = $7
	`, w.Name, w.Link, w.Image, int64(w.Price), w.Description, w.UpdatedAt, w.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *WishRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM wishes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *WishRepository) Last(ctx context.Context, limit int) ([]entity.Wish, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+wishColumns+` FROM wishes ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collectWishes(rows)
}

func (r *WishRepository) Top(ctx context.Context, limit int) ([]entity.Wish, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+wishColumns+` FROM wishes ORDER BY copied DESC, created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collectWishes(rows)
}

func (r *WishRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Wish, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+wishColumns+` FROM wishes WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	return collectWishes(rows)
}

func (r *WishRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Wish, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+wishColumns+` FROM wishes WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectWishes(rows)
}

// Copy duplicates the source wish for newOwnerID and bumps the source's
// copied counter; both writes commit together.
func (r *WishRepository) Copy(ctx context.Context, sourceID, newOwnerID string) (*entity.Wish, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE wishes SET copied = copied + 1, updated_at = now() WHERE id = $1
	`, sourceID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}

	dup, err := scanWish(tx.QueryRow(ctx, `
		INSERT INTO wishes (name, link, image, price, description, owner_id)
		SELECT name, link, image, price, description, $2
		FROM wishes WHERE id = $1
		RETURNING `+wishColumns+`
	`, sourceID, newOwnerID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return dup, nil
}

var _ repository.WishRepository = (*WishRepository)(nil)
