package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
	"github.com/wishdrop/wishdrop-backend/pkg/mailer"
	"github.com/wishdrop/wishdrop-backend/pkg/money"
)

// OfferService implements pledging money toward wishes.
type OfferService struct {
	Offers  repository.OfferRepository
	Wishes  repository.WishRepository
	Users   repository.UserRepository
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewOfferService(offers repository.OfferRepository, wishes repository.WishRepository, users repository.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *OfferService {
	return &OfferService{Offers: offers, Wishes: wishes, Users: users, Pub: pub, Logger: logger, AppName: appName}
}

// Create pledges amount toward the wish itemID on behalf of callerID.
// Checks run in a fixed order: the caller must exist, the wish must exist,
// the caller must not own the wish, and the pledge must not push raised past
// price. The same owner and funding checks are re-run inside the repository
// transaction while the wish row is locked, so the fast-path checks here can
// only produce earlier, never different, failures.
func (s *OfferService) Create(ctx context.Context, callerID, itemID string, amount money.Amount, hidden bool) (*entity.Offer, error) {
	if amount <= 0 {
		return nil, apperr.ErrInvalidAmount
	}

	caller, err := s.Users.GetByID(ctx, callerID)
	if err != nil || caller == nil {
		return nil, apperr.ErrUnauthorized
	}

	wish, err := s.Wishes.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrWishNotFound
		}
		return nil, err
	}
	if wish.OwnerID == callerID {
		return nil, apperr.ErrConflictCreateOwnWishOffer
	}
	if wish.Raised+amount > wish.Price {
		return nil, apperr.ErrTooMuchMoney
	}

	o := &entity.Offer{
		UserID: callerID,
		ItemID: itemID,
		Amount: amount,
		Hidden: hidden,
	}
	updated, err := s.Offers.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	o.User = caller

	if updated.FullyFunded() {
		s.enqueueFunded(ctx, updated)
	}
	return o, nil
}

func (s *OfferService) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	o, err := s.Offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrOfferNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OfferService) List(ctx context.Context, limit int) ([]entity.Offer, error) {
	if limit <= 0 || limit > 100 {
		limit = 40
	}
	return s.Offers.List(ctx, limit)
}

// enqueueFunded notifies the wish owner that the wish reached its price.
// Notification failures are logged, never surfaced to the pledger.
func (s *OfferService) enqueueFunded(ctx context.Context, wish *entity.Wish) {
	if s.Pub == nil {
		return
	}
	owner, err := s.Users.GetByID(ctx, wish.OwnerID)
	if err != nil || owner == nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("wish_id", wish.ID).Warn("load wish owner for funded email failed")
		}
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	job := mailer.EmailJob{
		To:       owner.Email,
		Template: mailer.TemplateWishFunded,
		Data: map[string]any{
			"Username": owner.Username,
			"WishName": wish.Name,
			"Price":    wish.Price.String(),
			"AppName":  s.AppName,
		},
	}
	if err := s.Pub.PublishJSON(c, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("wish_id", wish.ID).Warn("enqueue funded email failed")
	}
}
