package user

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/auth"
)

var validate = validator.New()

// Service implements domain.UserUsecase: registration, login, profile
// updates and the follow relation.
type Service struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, tokens *auth.TokenService) *Service {
	return &Service{
		userRepo: u,
		tokens:   tokens,
	}
}

func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (domain.User, string, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateCredentials(username, email, input.Password); err != nil {
		return domain.User{}, "", err
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return domain.User{}, "", domain.NewValidationError("username", "is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", err
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.User{}, "", domain.NewValidationError("email", "is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", err
	}

	salt, hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := s.userRepo.Insert(ctx, &user); err != nil {
		// the storage layer may still race us to the unique index
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, "", domain.NewValidationError("username or email", "is already taken")
		}
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	if email == "" {
		return domain.User{}, "", domain.NewValidationError("email", "can't be blank")
	}
	if password == "" {
		return domain.User{}, "", domain.NewValidationError("password", "can't be blank")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.NewValidationError("email or password", "is invalid")
		}
		return domain.User{}, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return domain.User{}, "", domain.NewValidationError("email or password", "is invalid")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update applies only fields explicitly present in the request.
// An absent field never clears the stored value.
func (s *Service) Update(ctx context.Context, id int64, input domain.UpdateUserInput) (domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if input.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*input.Username))
		if err := validate.Var(username, "required,alphanum"); err != nil {
			return domain.User{}, domain.NewValidationError("username", "is invalid")
		}
		user.Username = username
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			return domain.User{}, domain.NewValidationError("email", "is invalid")
		}
		user.Email = email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Image != nil {
		user.Image = *input.Image
	}
	if input.Password != nil {
		if *input.Password == "" {
			return domain.User{}, domain.NewValidationError("password", "can't be blank")
		}
		salt, hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordSalt = salt
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, domain.NewValidationError("username or email", "is already taken")
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) Profile(ctx context.Context, username string, viewerID int64) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return domain.Profile{}, err
	}

	following := false
	if viewerID != 0 {
		following, err = s.userRepo.IsFollowing(ctx, viewerID, target.ID)
		if err != nil {
			return domain.Profile{}, err
		}
	}
	return domain.ProfileOf(target, following), nil
}

func (s *Service) Follow(ctx context.Context, followerID int64, username string) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return domain.Profile{}, err
	}

	if target.ID == followerID {
		return domain.Profile{}, domain.NewValidationError("username", "cannot follow yourself")
	}

	if err := s.userRepo.Follow(ctx, followerID, target.ID); err != nil {
		return domain.Profile{}, err
	}
	return domain.ProfileOf(target, true), nil
}

func (s *Service) Unfollow(ctx context.Context, followerID int64, username string) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return domain.Profile{}, err
	}

	if err := s.userRepo.Unfollow(ctx, followerID, target.ID); err != nil {
		return domain.Profile{}, err
	}
	return domain.ProfileOf(target, false), nil
}

func validateCredentials(username, email, password string) error {
	if err := validate.Var(username, "required,alphanum"); err != nil {
		if username == "" {
			return domain.NewValidationError("username", "can't be blank")
		}
		return domain.NewValidationError("username", "is invalid")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		if email == "" {
			return domain.NewValidationError("email", "can't be blank")
		}
		return domain.NewValidationError("email", "is invalid")
	}
	if password == "" {
		return domain.NewValidationError("password", "can't be blank")
	}
	return nil
}
