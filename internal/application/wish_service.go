package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
	"github.com/wishdrop/wishdrop-backend/pkg/money"
)

const (
	cacheKeyLastWishes = "wishes:last"
	cacheKeyTopWishes  = "wishes:top"
	feedCacheTTL       = 30 * time.Second

	lastWishesLimit = 40
	topWishesLimit  = 20
)

// WishService implements wish CRUD, the public feeds and search.
type WishService struct {
	Repo          repository.WishRepository
	Offers        repository.OfferRepository
	Redis         *redis.Client
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESWishesIndex string
}

func NewWishService(repo repository.WishRepository, offers repository.OfferRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esWishesIndex string) *WishService {
	return &WishService{Repo: repo, Offers: offers, Redis: rdb, Logger: logger, ES: es, ESWishesIndex: esWishesIndex}
}

type CreateWishInput struct {
	Name        string
	Link        string
	Image       string
	Price       money.Amount
	Description string
}

func (s *WishService) Create(ctx context.Context, ownerID string, in CreateWishInput) (*entity.Wish, error) {
	if in.Price <= 0 {
		return nil, apperr.ErrInvalidAmount
	}
	w := &entity.Wish{
		Name:        in.Name,
		Link:        in.Link,
		Image:       in.Image,
		Price:       in.Price,
		Description: in.Description,
		OwnerID:     ownerID,
	}
	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}
	s.invalidateFeeds(ctx)
	_ = s.indexWish(ctx, w)
	return w, nil
}

// GetByID loads a wish together with its offers.
func (s *WishService) GetByID(ctx context.Context, id string) (*entity.Wish, error) {
	w, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishNotFound
		}
		return nil, err
	}
	offers, err := s.Offers.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Offers = offers
	return w, nil
}

type UpdateWishInput struct {
	Name        string
	Link        string
	Image       string
	Description string
	Price       *money.Amount
}

// Update edits the caller's own wish. The price is frozen once anyone has
// pledged money toward the wish.
func (s *WishService) Update(ctx context.Context, callerID, id string, in UpdateWishInput) (*entity.Wish, error) {
	w, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishNotFound
		}
		return nil, err
	}
	if w.OwnerID != callerID {
		return nil, apperr.ErrConflictUpdateOtherWish
	}

	if in.Price != nil && *in.Price != w.Price {
		if w.Funded() {
			return nil, apperr.ErrConflictUpdateWishPrice
		}
		if *in.Price <= 0 {
			return nil, apperr.ErrInvalidAmount
		}
		w.Price = *in.Price
	}
	if in.Name != "" {
		w.Name = in.Name
	}
	if in.Link != "" {
		w.Link = in.Link
	}
	if in.Image != "" {
		w.Image = in.Image
	}
	if in.Description != "" {
		w.Description = in.Description
	}

	if err := s.Repo.Update(ctx, w); err != nil {
		return nil, err
	}
	s.invalidateFeeds(ctx)
	_ = s.indexWish(ctx, w)
	return w, nil
}

// Delete removes the caller's own wish. A wish that has already received
// pledges cannot be deleted.
func (s *WishService) Delete(ctx context.Context, callerID, id string) error {
	w, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrWishNotFound
		}
		return err
	}
	if w.OwnerID != callerID {
		return apperr.ErrConflictDeleteOtherWish
	}
	if w.Funded() {
		return apperr.ErrConflict
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeeds(ctx)
	s.deleteWishDoc(ctx, id)
	return nil
}

// Copy duplicates someone's wish into the caller's own collection with a
// fresh raised total, and bumps the source's copied counter.
func (s *WishService) Copy(ctx context.Context, callerID, sourceID string) (*entity.Wish, error) {
	dup, err := s.Repo.Copy(ctx, sourceID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishNotFound
		}
		return nil, err
	}
	s.invalidateFeeds(ctx)
	_ = s.indexWish(ctx, dup)
	return dup, nil
}

// Last returns the newest wishes, served from a short-lived cache.
func (s *WishService) Last(ctx context.Context) ([]entity.Wish, error) {
	return s.cachedFeed(ctx, cacheKeyLastWishes, func() ([]entity.Wish, error) {
		return s.Repo.Last(ctx, lastWishesLimit)
	})
}

// Top returns the most copied wishes, served from a short-lived cache.
func (s *WishService) Top(ctx context.Context) ([]entity.Wish, error) {
	return s.cachedFeed(ctx, cacheKeyTopWishes, func() ([]entity.Wish, error) {
		return s.Repo.Top(ctx, topWishesLimit)
	})
}

func (s *WishService) ListByOwner(ctx context.Context, ownerID string) ([]entity.Wish, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *WishService) cachedFeed(ctx context.Context, key string, load func() ([]entity.Wish, error)) ([]entity.Wish, error) {
	if s.Redis != nil {
		var cached []entity.Wish
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return cached, nil
		}
	}
	wishes, err := load()
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, wishes, feedCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("feed cache write failed")
		}
	}
	return wishes, nil
}

func (s *WishService) invalidateFeeds(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, cacheKeyLastWishes, cacheKeyTopWishes).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("feed cache invalidation failed")
	}
}

func (s *WishService) indexWish(ctx context.Context, w *entity.Wish) error {
	if s.ES == nil || s.ESWishesIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          w.ID,
		"name":        w.Name,
		"description": w.Description,
		"link":        w.Link,
		"image":       w.Image,
		"price":       w.Price.String(),
		"owner_id":    w.OwnerID,
		"copied":      w.Copied,
		"created_at":  w.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  w.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESWishesIndex, DocumentID: w.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("wish_id", w.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("wish_id", w.ID).Warn("es index response error")
	}
	return nil
}

func (s *WishService) deleteWishDoc(ctx context.Context, id string) {
	if s.ES == nil || s.ESWishesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESWishesIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("wish_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over wish names and descriptions.
func (s *WishService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESWishesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESWishesIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		doc := h.Source
		if doc == nil {
			doc = map[string]any{}
		}
		doc["id"] = h.ID
		out = append(out, doc)
	}
	return out, nil
}
