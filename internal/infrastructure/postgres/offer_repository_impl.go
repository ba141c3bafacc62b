package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
)

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

// Create inserts the offer and raises the wish total as one transaction.
// The wish row is taken FOR UPDATE, so the self-pledge and over-funding
// checks hold against the freshest committed state: of two concurrent
// pledges racing for the remaining amount, the second blocks on the lock
// and re-validates against the first one's committed raised value.
func (r *OfferRepository) Create(ctx context.Context, o *entity.Offer) (*entity.Wish, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	wish, err := scanWish(tx.QueryRow(ctx, `
		SELECT `+wishColumns+` FROM wishes WHERE id = $1 FOR UPDATE
	`, o.ItemID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishNotFound
		}
		return nil, err
	}

	if wish.OwnerID == o.UserID {
		return nil, apperr.ErrConflictCreateOwnWishOffer
	}
	newRaised := wish.Raised + o.Amount
	if newRaised > wish.Price {
		return nil, apperr.ErrTooMuchMoney
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO offers (user_id, item_id, amount, hidden)
		VALUES ($1, $2, $3::bigint::numeric / 100, $4)
		RETURNING id, created_at, updated_at
	`, o.UserID, o.ItemID, int64(o.Amount), o.Hidden)
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE wishes SET raised = $1::bigint::numeric / 100, updated_at = now() WHERE id = $2
	`, int64(newRaised), wish.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	wish.Raised = newRaised
	return wish, nil
}

const offerColumns = `o.id, o.user_id, o.item_id, (o.amount * 100)::bigint, o.hidden,
	o.created_at, o.updated_at,
	u.id, u.username, u.email, u.password, u.about, u.avatar, u.created_at, u.updated_at`

func scanOffer(row pgx.Row) (*entity.Offer, error) {
	o := &entity.Offer{User: &entity.User{}}
	u := o.User
	if err := row.Scan(&o.ID, &o.UserID, &o.ItemID, &o.Amount, &o.Hidden,
		&o.CreatedAt, &o.UpdatedAt,
		&u.ID, &u.Username, &u.Email, &u.Password, &u.About, &u.Avatar,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	return scanOffer(r.pool.QueryRow(ctx, `
		SELECT `+offerColumns+`
		FROM offers o JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
	`, id))
}

func (r *OfferRepository) List(ctx context.Context, limit int) ([]entity.Offer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offers o JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collectOffers(rows)
}

func (r *OfferRepository) ListByItem(ctx context.Context, itemID string) ([]entity.Offer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offers o JOIN users u ON u.id = o.user_id
		WHERE o.item_id = $1
		ORDER BY o.created_at DESC
	`, itemID)
	if err != nil {
		return nil, err
	}
	return collectOffers(rows)
}

func collectOffers(rows pgx.Rows) ([]entity.Offer, error) {
	defer rows.Close()
	var out []entity.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

var _ repository.OfferRepository = (*OfferRepository)(nil)
