package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
)

type wishlistFixture struct {
	svc    *WishlistService
	wishes *fakeWishRepo

	owner *entity.User
	other *entity.User
	w1    *entity.Wish
	w2    *entity.Wish
}

func newWishlistFixture(t *testing.T) *wishlistFixture {
	t.Helper()
	ctx := context.Background()

	users := newFakeUserRepo()
	wishes := newFakeWishRepo()
	lists := newFakeWishlistRepo(wishes)

	owner := &entity.User{Username: "owner", Email: "owner@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, owner))
	other := &entity.User{Username: "other", Email: "other@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, other))

	w1 := &entity.Wish{Name: "one", Price: 1000, OwnerID: owner.ID}
	require.NoError(t, wishes.Create(ctx, w1))
	w2 := &entity.Wish{Name: "two", Price: 2000, OwnerID: owner.ID}
	require.NoError(t, wishes.Create(ctx, w2))

	return &wishlistFixture{
		svc:    NewWishlistService(lists, wishes),
		wishes: wishes,
		owner:  owner,
		other:  other,
		w1:     w1,
		w2:     w2,
	}
}

func TestWishlistCreate(t *testing.T) {
	f := newWishlistFixture(t)
	ctx := context.Background()

	wl, err := f.svc.Create(ctx, f.owner.ID, CreateWishlistInput{
		Name:    "birthday",
		ItemsID: []string{f.w1.ID, f.w2.ID},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, wl.ID)
	assert.Len(t, wl.Items, 2)
}

func TestWishlistCreateValidatesItems(t *testing.T) {
	f := newWishlistFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.owner.ID, CreateWishlistInput{Name: "empty"})
	assert.ErrorIs(t, err, apperr.ErrEmptyItemsID)

	_, err = f.svc.Create(ctx, f.owner.ID, CreateWishlistInput{
		Name:    "bad",
		ItemsID: []string{f.w1.ID, "missing"},
	})
	assert.ErrorIs(t, err, apperr.ErrWishesNotFound)
}

func TestWishlistUpdate(t *testing.T) {
	f := newWishlistFixture(t)
	ctx := context.Background()

	wl, err := f.svc.Create(ctx, f.owner.ID, CreateWishlistInput{
		Name:    "birthday",
		ItemsID: []string{f.w1.ID, f.w2.ID},
	})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.other.ID, wl.ID, UpdateWishlistInput{Name: "mine now"})
	assert.ErrorIs(t, err, apperr.ErrConflictUpdateOtherWishlist)

	// nil ItemsID keeps the current items
	got, err := f.svc.Update(ctx, f.owner.ID, wl.ID, UpdateWishlistInput{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Len(t, got.Items, 2)

	// explicit ItemsID replaces them
	got, err = f.svc.Update(ctx, f.owner.ID, wl.ID, UpdateWishlistInput{ItemsID: []string{f.w1.ID}})
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	// empty but non-nil ItemsID is rejected
	_, err = f.svc.Update(ctx, f.owner.ID, wl.ID, UpdateWishlistInput{ItemsID: []string{}})
	assert.ErrorIs(t, err, apperr.ErrEmptyItemsID)

	_, err = f.svc.Update(ctx, f.owner.ID, "missing", UpdateWishlistInput{Name: "x"})
	assert.ErrorIs(t, err, apperr.ErrWishlistNotFound)
}

func TestWishlistDelete(t *testing.T) {
	f := newWishlistFixture(t)
	ctx := context.Background()

	wl, err := f.svc.Create(ctx, f.owner.ID, CreateWishlistInput{
		Name:    "birthday",
		ItemsID: []string{f.w1.ID},
	})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.other.ID, wl.ID)
	assert.ErrorIs(t, err, apperr.ErrConflictDeleteOtherWishlist)

	require.NoError(t, f.svc.Delete(ctx, f.owner.ID, wl.ID))
	_, err = f.svc.GetByID(ctx, wl.ID)
	assert.ErrorIs(t, err, apperr.ErrWishlistNotFound)

	// Deleting a wishlist leaves its wishes alone
	_, err = f.wishes.GetByID(ctx, f.w1.ID)
	assert.NoError(t, err)
}
