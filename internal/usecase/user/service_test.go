package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/domain/mocks"
	"github.com/conduit-labs/conduit/internal/auth"
	"github.com/conduit-labs/conduit/internal/usecase/user"
)

func newService(repo *mocks.UserRepository) *user.Service {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	return user.NewService(repo, tokens)
}

func storedUser(t *testing.T, id int64, username, email, password string) domain.User {
	t.Helper()
	salt, hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "jake").Return(domain.User{}, domain.ErrNotFound).Once()
		repo.On("GetByEmail", mock.Anything, "jake@jake.jake").Return(domain.User{}, domain.ErrNotFound).Once()
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				u.ID = 1
			}).Return(nil).Once()

		svc := newService(repo)
		u, token, err := svc.Register(context.Background(), domain.RegisterInput{
			Username: "  Jake ",
			Email:    "Jake@Jake.jake",
			Password: "jakejake",
		})

		require.NoError(t, err)
		assert.Equal(t, "jake", u.Username)
		assert.Equal(t, "jake@jake.jake", u.Email)
		assert.NotEmpty(t, token)
		assert.True(t, auth.VerifyPassword("jakejake", u.PasswordSalt, u.PasswordHash))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "jake").Return(domain.User{ID: 7, Username: "jake"}, nil).Once()

		svc := newService(repo)
		_, _, err := svc.Register(context.Background(), domain.RegisterInput{
			Username: "jake",
			Email:    "jake@jake.jake",
			Password: "jakejake",
		})

		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "is already taken", verr.Fields["username"])
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "jake").Return(domain.User{}, domain.ErrNotFound).Once()
		repo.On("GetByEmail", mock.Anything, "jake@jake.jake").Return(domain.User{ID: 7}, nil).Once()

		svc := newService(repo)
		_, _, err := svc.Register(context.Background(), domain.RegisterInput{
			Username: "jake",
			Email:    "jake@jake.jake",
			Password: "jakejake",
		})

		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "is already taken", verr.Fields["email"])
	})

	t.Run("insert race on unique index", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "jake").Return(domain.User{}, domain.ErrNotFound).Once()
		repo.On("GetByEmail", mock.Anything, "jake@jake.jake").Return(domain.User{}, domain.ErrNotFound).Once()
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrConflict).Once()

		svc := newService(repo)
		_, _, err := svc.Register(context.Background(), domain.RegisterInput{
			Username: "jake",
			Email:    "jake@jake.jake",
			Password: "jakejake",
		})

		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name  string
			input domain.RegisterInput
			field string
		}{
			{"blank username", domain.RegisterInput{Email: "a@b.c", Password: "x"}, "username"},
			{"non alphanumeric username", domain.RegisterInput{Username: "ja ke!", Email: "a@b.c", Password: "x"}, "username"},
			{"blank email", domain.RegisterInput{Username: "jake", Password: "x"}, "email"},
			{"malformed email", domain.RegisterInput{Username: "jake", Email: "not-an-email", Password: "x"}, "email"},
			{"blank password", domain.RegisterInput{Username: "jake", Email: "a@b.c"}, "password"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := new(mocks.UserRepository)
				svc := newService(repo)
				_, _, err := svc.Register(context.Background(), tc.input)
				verr, ok := domain.AsValidationError(err)
				require.True(t, ok)
				assert.Contains(t, verr.Fields, tc.field)
				repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stored := storedUser(t, 1, "jake", "jake@jake.jake", "jakejake")
		repo := new(mocks.UserRepository)
		repo.On("GetByEmail", mock.Anything, "jake@jake.jake").Return(stored, nil).Once()

		svc := newService(repo)
		u, token, err := svc.Login(context.Background(), "Jake@Jake.jake", "jakejake")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, u.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		stored := storedUser(t, 1, "jake", "jake@jake.jake", "jakejake")
		repo := new(mocks.UserRepository)
		repo.On("GetByEmail", mock.Anything, "jake@jake.jake").Return(stored, nil).Once()

		svc := newService(repo)
		_, _, err := svc.Login(context.Background(), "jake@jake.jake", "wrong")

		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "is invalid", verr.Fields["email or password"])
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByEmail", mock.Anything, "ghost@jake.jake").Return(domain.User{}, domain.ErrNotFound).Once()

		svc := newService(repo)
		_, _, err := svc.Login(context.Background(), "ghost@jake.jake", "whatever")

		// identical response to a wrong password, no account probing
		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "is invalid", verr.Fields["email or password"])
	})

	t.Run("blank credentials", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := newService(repo)

		_, _, err := svc.Login(context.Background(), "", "pw")
		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "email")

		_, _, err = svc.Login(context.Background(), "jake@jake.jake", "")
		verr, ok = domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "password")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("partial update leaves absent fields untouched", func(t *testing.T) {
		stored := storedUser(t, 1, "jake", "jake@jake.jake", "jakejake")
		stored.Bio = "old bio"
		stored.Image = "https://img.example/jake.png"

		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		bio := "I like to skateboard"
		svc := newService(repo)
		u, err := svc.Update(context.Background(), 1, domain.UpdateUserInput{Bio: &bio})

		require.NoError(t, err)
		assert.Equal(t, "I like to skateboard", u.Bio)
		assert.Equal(t, "jake", u.Username)
		assert.Equal(t, "https://img.example/jake.png", u.Image)
		assert.Equal(t, stored.PasswordHash, u.PasswordHash)
	})

	t.Run("password change re-derives credentials", func(t *testing.T) {
		stored := storedUser(t, 1, "jake", "jake@jake.jake", "oldpass")
		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		newPass := "newpass"
		svc := newService(repo)
		u, err := svc.Update(context.Background(), 1, domain.UpdateUserInput{Password: &newPass})

		require.NoError(t, err)
		assert.NotEqual(t, stored.PasswordHash, u.PasswordHash)
		assert.NotEqual(t, stored.PasswordSalt, u.PasswordSalt)
		assert.True(t, auth.VerifyPassword("newpass", u.PasswordSalt, u.PasswordHash))
		assert.False(t, auth.VerifyPassword("oldpass", u.PasswordSalt, u.PasswordHash))
	})

	t.Run("username conflict", func(t *testing.T) {
		stored := storedUser(t, 1, "jake", "jake@jake.jake", "jakejake")
		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrConflict).Once()

		taken := "alice"
		svc := newService(repo)
		_, err := svc.Update(context.Background(), 1, domain.UpdateUserInput{Username: &taken})

		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestProfile(t *testing.T) {
	target := domain.User{ID: 2, Username: "celeb", Bio: "famous"}

	t.Run("anonymous viewer never follows", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "celeb").Return(target, nil).Once()

		svc := newService(repo)
		p, err := svc.Profile(context.Background(), "celeb", 0)

		require.NoError(t, err)
		assert.False(t, p.Following)
		assert.Equal(t, domain.DefaultProfileImage, p.Image)
		repo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("authenticated viewer sees follow state", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "celeb").Return(target, nil).Once()
		repo.On("IsFollowing", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

		svc := newService(repo)
		p, err := svc.Profile(context.Background(), "celeb", 1)

		require.NoError(t, err)
		assert.True(t, p.Following)
	})

	t.Run("unknown username", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound).Once()

		svc := newService(repo)
		_, err := svc.Profile(context.Background(), "ghost", 0)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFollow(t *testing.T) {
	target := domain.User{ID: 2, Username: "celeb"}

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "celeb").Return(target, nil).Once()
		repo.On("Follow", mock.Anything, int64(1), int64(2)).Return(nil).Once()

		svc := newService(repo)
		p, err := svc.Follow(context.Background(), 1, "celeb")

		require.NoError(t, err)
		assert.True(t, p.Following)
	})

	t.Run("self follow is rejected", func(t *testing.T) {
		self := domain.User{ID: 1, Username: "jake"}
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "jake").Return(self, nil).Once()

		svc := newService(repo)
		_, err := svc.Follow(context.Background(), 1, "jake")

		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		repo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unfollow reports not following", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "celeb").Return(target, nil).Once()
		repo.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(nil).Once()

		svc := newService(repo)
		p, err := svc.Unfollow(context.Background(), 1, "celeb")

		require.NoError(t, err)
		assert.False(t, p.Following)
	})
}
