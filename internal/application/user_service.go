package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/internal/domain/repository"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
	"github.com/wishdrop/wishdrop-backend/pkg/mailer"
)

// UserService implements signup, signin and profile management.
type UserService struct {
	Repo      repository.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
	AppName   string
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *UserService {
	return &UserService{Repo: repo, JWT: jwt, GCS: gcs, GCSBucket: gcsBucket, Pub: pub, Logger: logger, AppName: appName}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
	About    string
	Avatar   string
}

// Signup creates an account and issues a bearer token. Username and email
// are folded to lowercase before the uniqueness check and the insert.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*entity.User, string, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if existing, err := s.Repo.GetByLogin(ctx, username); err == nil && existing != nil {
		return nil, "", apperr.ErrUserAlreadyExists
	}
	if existing, err := s.Repo.GetByLogin(ctx, email); err == nil && existing != nil {
		return nil, "", apperr.ErrUserAlreadyExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
		About:    in.About,
		Avatar:   in.Avatar,
	}
	if u.About == "" {
		u.About = entity.DefaultAbout
	}
	if u.Avatar == "" {
		u.Avatar = entity.DefaultAvatar
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperr.ErrUserAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.enqueueWelcome(ctx, u)
	return u, token, nil
}

// Signin validates login (username or email) and password.
func (s *UserService) Signin(ctx context.Context, login, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByLogin(ctx, strings.ToLower(strings.TrimSpace(login)))
	if err != nil || u == nil {
		return nil, "", apperr.ErrLoginOrPasswordIncorrect
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", apperr.ErrLoginOrPasswordIncorrect
	}
	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, apperr.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil || u == nil {
		return nil, apperr.ErrUserNotFound
	}
	return u, nil
}

// Find searches users by username or email substring.
func (s *UserService) Find(ctx context.Context, query string) ([]entity.User, error) {
	return s.Repo.Find(ctx, strings.ToLower(strings.TrimSpace(query)), 50)
}

type UpdateProfileInput struct {
	Username string
	Email    string
	Password string
	About    string
	Avatar   string
}

// UpdateProfile updates the caller's own profile. Username/email changes
// re-run the uniqueness check; a new password is re-hashed.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, apperr.ErrUserNotFound
	}

	if in.Username != "" {
		username := strings.ToLower(strings.TrimSpace(in.Username))
		if username != u.Username {
			if other, err := s.Repo.GetByLogin(ctx, username); err == nil && other != nil && other.ID != u.ID {
				return nil, apperr.ErrUserAlreadyExists
			}
			u.Username = username
		}
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != u.Email {
			if other, err := s.Repo.GetByLogin(ctx, email); err == nil && other != nil && other.ID != u.ID {
				return nil, apperr.ErrUserAlreadyExists
			}
			u.Email = email
		}
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if in.About != "" {
		u.About = in.About
	}
	if in.Avatar != "" {
		u.Avatar = in.Avatar
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.ErrUserAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// Delete removes an account. Only the owner may delete it.
func (s *UserService) Delete(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return apperr.ErrConflictDeleteOtherProfile
	}
	if err := s.Repo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrUserNotFound
		}
		return err
	}
	return nil
}

// UploadAvatar stores the image in GCS and saves its URL on the profile.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return "", apperr.ErrUserNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.Avatar = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) issueToken(userID string) (string, error) {
	if s.JWT == nil {
		return "", nil
	}
	token, _, err := s.JWT.Generate(userID)
	return token, err
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"Username": u.Username,
			"AppName":  s.AppName,
		},
	}
	if err := s.Pub.PublishJSON(c, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
	}
}
