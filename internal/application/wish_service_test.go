package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
	"github.com/wishdrop/wishdrop-backend/pkg/money"
)

type wishFixture struct {
	users  *fakeUserRepo
	wishes *fakeWishRepo
	offers *fakeOfferRepo
	svc    *WishService

	owner *entity.User
	other *entity.User
}

func newWishFixture(t *testing.T) *wishFixture {
	t.Helper()
	ctx := context.Background()

	users := newFakeUserRepo()
	wishes := newFakeWishRepo()
	offers := newFakeOfferRepo(wishes)

	owner := &entity.User{Username: "owner", Email: "owner@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, owner))
	other := &entity.User{Username: "other", Email: "other@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, other))

	return &wishFixture{
		users:  users,
		wishes: wishes,
		offers: offers,
		svc:    NewWishService(wishes, offers, nil, nil, nil, ""),
		owner:  owner,
		other:  other,
	}
}

func (f *wishFixture) createWish(t *testing.T, price money.Amount) *entity.Wish {
	t.Helper()
	w, err := f.svc.Create(context.Background(), f.owner.ID, CreateWishInput{
		Name:        "camera",
		Link:        "https://example.com/camera",
		Image:       "https://example.com/camera.jpg",
		Price:       price,
		Description: "a camera",
	})
	require.NoError(t, err)
	return w
}

func (f *wishFixture) pledge(t *testing.T, wishID string, amount money.Amount) {
	t.Helper()
	_, err := f.offers.Create(context.Background(), &entity.Offer{
		UserID: f.other.ID,
		ItemID: wishID,
		Amount: amount,
	})
	require.NoError(t, err)
}

func TestWishCreateAndGet(t *testing.T) {
	f := newWishFixture(t)
	w := f.createWish(t, 25000)

	got, err := f.svc.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
	assert.Equal(t, money.Amount(25000), got.Price)
	assert.Equal(t, money.Amount(0), got.Raised)
	assert.NotNil(t, got.Offers)

	_, err = f.svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrWishNotFound)
}

func TestWishCreateRejectsNonPositivePrice(t *testing.T) {
	f := newWishFixture(t)
	_, err := f.svc.Create(context.Background(), f.owner.ID, CreateWishInput{Name: "x", Price: 0})
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
}

func TestWishUpdateOwnerOnly(t *testing.T) {
	f := newWishFixture(t)
	w := f.createWish(t, 25000)

	_, err := f.svc.Update(context.Background(), f.other.ID, w.ID, UpdateWishInput{Name: "new name"})
	assert.ErrorIs(t, err, apperr.ErrConflictUpdateOtherWish)

	got, err := f.svc.Update(context.Background(), f.owner.ID, w.ID, UpdateWishInput{Name: "new name"})
	require.NoError(t, err)
	assert.Equal(t, "new name", got.Name)
}

func TestWishPriceFrozenOnceFunded(t *testing.T) {
	f := newWishFixture(t)
	w := f.createWish(t, 25000)
	ctx := context.Background()

	// Unfunded: price change is fine
	newPrice := money.Amount(30000)
	got, err := f.svc.Update(ctx, f.owner.ID, w.ID, UpdateWishInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newPrice, got.Price)

	f.pledge(t, w.ID, 100)

	// Funded: any price change is rejected
	another := money.Amount(40000)
	_, err = f.svc.Update(ctx, f.owner.ID, w.ID, UpdateWishInput{Price: &another})
	assert.ErrorIs(t, err, apperr.ErrConflictUpdateWishPrice)

	// Same value is not a change
	_, err = f.svc.Update(ctx, f.owner.ID, w.ID, UpdateWishInput{Price: &newPrice, Name: "renamed"})
	require.NoError(t, err)

	// Other fields stay editable while funded
	got, err = f.svc.Update(ctx, f.owner.ID, w.ID, UpdateWishInput{Description: "still editable"})
	require.NoError(t, err)
	assert.Equal(t, "still editable", got.Description)
}

func TestWishDeleteRules(t *testing.T) {
	f := newWishFixture(t)
	w := f.createWish(t, 25000)
	ctx := context.Background()

	err := f.svc.Delete(ctx, f.other.ID, w.ID)
	assert.ErrorIs(t, err, apperr.ErrConflictDeleteOtherWish)

	f.pledge(t, w.ID, 100)
	err = f.svc.Delete(ctx, f.owner.ID, w.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	w2 := f.createWish(t, 5000)
	require.NoError(t, f.svc.Delete(ctx, f.owner.ID, w2.ID))
	_, err = f.svc.GetByID(ctx, w2.ID)
	assert.ErrorIs(t, err, apperr.ErrWishNotFound)
}

func TestWishCopy(t *testing.T) {
	f := newWishFixture(t)
	w := f.createWish(t, 25000)
	f.pledge(t, w.ID, 10000)
	ctx := context.Background()

	dup, err := f.svc.Copy(ctx, f.other.ID, w.ID)
	require.NoError(t, err)
	assert.NotEqual(t, w.ID, dup.ID)
	assert.Equal(t, f.other.ID, dup.OwnerID)
	assert.Equal(t, w.Name, dup.Name)
	assert.Equal(t, w.Price, dup.Price)
	assert.Equal(t, money.Amount(0), dup.Raised)
	assert.Equal(t, 0, dup.Copied)

	src, err := f.svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Copied)
	assert.Equal(t, money.Amount(10000), src.Raised)

	_, err = f.svc.Copy(ctx, f.other.ID, "missing")
	assert.ErrorIs(t, err, apperr.ErrWishNotFound)
}

func TestWishFeedsWithoutRedis(t *testing.T) {
	f := newWishFixture(t)
	f.createWish(t, 1000)
	f.createWish(t, 2000)

	last, err := f.svc.Last(context.Background())
	require.NoError(t, err)
	assert.Len(t, last, 2)

	top, err := f.svc.Top(context.Background())
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestWishSearchWithoutES(t *testing.T) {
	f := newWishFixture(t)
	hits, err := f.svc.Search(context.Background(), "camera", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
