package application

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
)

// In-memory repository fakes used by the service tests. The offer fake
// mirrors the transactional semantics of the Postgres implementation: the
// owner and funding checks run under a lock together with the raised update.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) nextID() string {
	r.seq++
	return "user-" + strconv.Itoa(r.seq)
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.users {
		if other.Username == u.Username || other.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = r.nextID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Find(_ context.Context, query string, limit int) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.User
	for _, u := range r.users {
		if strings.Contains(u.Username, query) || strings.Contains(u.Email, query) {
			out = append(out, *u)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeWishRepo struct {
	mu     sync.Mutex
	seq    int
	wishes map[string]*entity.Wish
}

func newFakeWishRepo() *fakeWishRepo {
	return &fakeWishRepo{wishes: map[string]*entity.Wish{}}
}

func (r *fakeWishRepo) nextID() string {
	r.seq++
	return "wish-" + strconv.Itoa(r.seq)
}

func (r *fakeWishRepo) Create(_ context.Context, w *entity.Wish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = r.nextID()
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	cp := *w
	r.wishes[w.ID] = &cp
	return nil
}

func (r *fakeWishRepo) GetByID(_ context.Context, id string) (*entity.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wishes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWishRepo) Update(_ context.Context, w *entity.Wish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.wishes[w.ID]
	if !ok {
		return repository.ErrNotFound
	}
	w.Raised = cur.Raised
	w.UpdatedAt = time.Now()
	cp := *w
	r.wishes[w.ID] = &cp
	return nil
}

func (r *fakeWishRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wishes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.wishes, id)
	return nil
}

func (r *fakeWishRepo) Last(_ context.Context, limit int) ([]entity.Wish, error) {
	return r.all(limit), nil
}

func (r *fakeWishRepo) Top(_ context.Context, limit int) ([]entity.Wish, error) {
	return r.all(limit), nil
}

func (r *fakeWishRepo) all(limit int) []entity.Wish {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Wish
	for _, w := range r.wishes {
		out = append(out, *w)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (r *fakeWishRepo) FindByIDs(_ context.Context, ids []string) ([]entity.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]struct{}{}
	var out []entity.Wish
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if w, ok := r.wishes[id]; ok {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWishRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Wish
	for _, w := range r.wishes {
		if w.OwnerID == ownerID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWishRepo) Copy(_ context.Context, sourceID, newOwnerID string) (*entity.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src, ok := r.wishes[sourceID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	src.Copied++
	dup := *src
	dup.ID = r.nextID()
	dup.OwnerID = newOwnerID
	dup.Raised = 0
	dup.Copied = 0
	dup.CreatedAt = time.Now()
	dup.UpdatedAt = dup.CreatedAt
	cp := dup
	r.wishes[dup.ID] = &cp
	return &dup, nil
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	seq    int
	offers map[string]*entity.Offer
	wishes *fakeWishRepo
}

func newFakeOfferRepo(wishes *fakeWishRepo) *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[string]*entity.Offer{}, wishes: wishes}
}

func (r *fakeOfferRepo) Create(_ context.Context, o *entity.Offer) (*entity.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wishes.mu.Lock()
	defer r.wishes.mu.Unlock()

	wish, ok := r.wishes.wishes[o.ItemID]
	if !ok {
		return nil, apperr.ErrWishNotFound
	}
	if wish.OwnerID == o.UserID {
		return nil, apperr.ErrConflictCreateOwnWishOffer
	}
	if wish.Raised+o.Amount > wish.Price {
		return nil, apperr.ErrTooMuchMoney
	}

	r.seq++
	o.ID = "offer-" + strconv.Itoa(r.seq)
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	r.offers[o.ID] = &cp

	wish.Raised += o.Amount
	out := *wish
	return &out, nil
}

func (r *fakeOfferRepo) GetByID(_ context.Context, id string) (*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfferRepo) List(_ context.Context, limit int) ([]entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Offer
	for _, o := range r.offers {
		out = append(out, *o)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) ListByItem(_ context.Context, itemID string) ([]entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Offer
	for _, o := range r.offers {
		if o.ItemID == itemID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakeWishlistRepo struct {
	mu     sync.Mutex
	seq    int
	lists  map[string]*entity.Wishlist
	items  map[string][]string
	wishes *fakeWishRepo
}

func newFakeWishlistRepo(wishes *fakeWishRepo) *fakeWishlistRepo {
	return &fakeWishlistRepo{lists: map[string]*entity.Wishlist{}, items: map[string][]string{}, wishes: wishes}
}

func (r *fakeWishlistRepo) Create(_ context.Context, wl *entity.Wishlist, itemIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	wl.ID = "wishlist-" + strconv.Itoa(r.seq)
	wl.CreatedAt = time.Now()
	wl.UpdatedAt = wl.CreatedAt
	cp := *wl
	r.lists[wl.ID] = &cp
	r.items[wl.ID] = append([]string(nil), itemIDs...)
	return nil
}

func (r *fakeWishlistRepo) GetByID(ctx context.Context, id string) (*entity.Wishlist, error) {
	r.mu.Lock()
	wl, ok := r.lists[id]
	if !ok {
		r.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	cp := *wl
	ids := append([]string(nil), r.items[id]...)
	r.mu.Unlock()

	items, err := r.wishes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	cp.Items = items
	return &cp, nil
}

func (r *fakeWishlistRepo) List(ctx context.Context, limit int) ([]entity.Wishlist, error) {
	r.mu.Lock()
	ids := make([]string, 0, len(r.lists))
	for id := range r.lists {
		ids = append(ids, id)
		if len(ids) == limit {
			break
		}
	}
	r.mu.Unlock()

	var out []entity.Wishlist
	for _, id := range ids {
		wl, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *wl)
	}
	return out, nil
}

func (r *fakeWishlistRepo) Update(_ context.Context, wl *entity.Wishlist, itemIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[wl.ID]; !ok {
		return repository.ErrNotFound
	}
	wl.UpdatedAt = time.Now()
	cp := *wl
	cp.Items = nil
	r.lists[wl.ID] = &cp
	if itemIDs != nil {
		r.items[wl.ID] = append([]string(nil), itemIDs...)
	}
	return nil
}

func (r *fakeWishlistRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.lists, id)
	delete(r.items, id)
	return nil
}

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.WishRepository     = (*fakeWishRepo)(nil)
	_ repository.OfferRepository    = (*fakeOfferRepo)(nil)
	_ repository.WishlistRepository = (*fakeWishlistRepo)(nil)
)
