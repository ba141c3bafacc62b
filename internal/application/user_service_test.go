package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(repo, jwt, nil, "", nil, nil, "wishdrop"), repo
}

func TestSignupAppliesDefaultsAndLowercases(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, token, err := svc.Signup(ctx, SignupInput{
		Username: "Alice",
		Email:    "Alice@Example.COM",
		Password: "secret12",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, entity.DefaultAbout, u.About)
	assert.Equal(t, entity.DefaultAvatar, u.Avatar)
	assert.NotEqual(t, "secret12", u.Password)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "secret12"})
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, SignupInput{Username: "ALICE", Email: "fresh@example.com", Password: "secret12"})
	assert.ErrorIs(t, err, apperr.ErrUserAlreadyExists)

	_, _, err = svc.Signup(ctx, SignupInput{Username: "bob", Email: "alice@example.com", Password: "secret12"})
	assert.ErrorIs(t, err, apperr.ErrUserAlreadyExists)
}

func TestSigninByUsernameOrEmail(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "secret12"})
	require.NoError(t, err)

	u, token, err := svc.Signin(ctx, "alice", "secret12")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)

	_, _, err = svc.Signin(ctx, "alice@example.com", "secret12")
	require.NoError(t, err)

	_, _, err = svc.Signin(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, apperr.ErrLoginOrPasswordIncorrect)

	_, _, err = svc.Signin(ctx, "nobody", "secret12")
	assert.ErrorIs(t, err, apperr.ErrLoginOrPasswordIncorrect)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, _, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "secret12"})
	require.NoError(t, err)
	_, _, err = svc.Signup(ctx, SignupInput{Username: "bob", Email: "bob@example.com", Password: "secret12"})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{About: "hello", Username: "Alicia"})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.About)
	assert.Equal(t, "alicia", got.Username)

	_, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Username: "bob"})
	assert.ErrorIs(t, err, apperr.ErrUserAlreadyExists)

	_, err = svc.UpdateProfile(ctx, "missing", UpdateProfileInput{About: "x"})
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestDeleteOwnAccountOnly(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, _, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "secret12"})
	require.NoError(t, err)

	err = svc.Delete(ctx, u.ID, "someone-else")
	assert.ErrorIs(t, err, apperr.ErrConflictDeleteOtherProfile)

	require.NoError(t, svc.Delete(ctx, u.ID, u.ID))
	_, err = svc.GetProfile(ctx, u.ID)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestFindUsers(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "secret12"})
	require.NoError(t, err)
	_, _, err = svc.Signup(ctx, SignupInput{Username: "bob", Email: "bob@example.com", Password: "secret12"})
	require.NoError(t, err)

	found, err := svc.Find(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].Username)
}
