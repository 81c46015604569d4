package domain

import (
	"context"
	"time"
)

// DefaultProfileImage is served whenever a user has not set an avatar.
const DefaultProfileImage = "https://static.productionready.io/images/smiley-cyrus.jpg"

// User represents a registered account.
// Usernames and emails are stored lowercase and are unique.
type User struct {
	ID           int64     // Unique identifier
	Username     string    // Public handle (lowercase, alphanumeric, unique)
	Email        string    // Login email (lowercase, unique)
	Bio          string    // Free-form self description
	Image        string    // Avatar URL, empty means unset
	PasswordHash string    // Hex-encoded PBKDF2 output
	PasswordSalt string    // Hex-encoded per-password salt
	CreatedAt    time.Time // Account creation timestamp
	UpdatedAt    time.Time // Last profile update timestamp
}

// Profile is the caller-aware projection of a user.
// Following is always false for anonymous viewers.
type Profile struct {
	Username  string
	Bio       string
	Image     string
	Following bool
}

// ProfileOf projects u for the given viewer-relative following flag.
func ProfileOf(u User, following bool) Profile {
	image := u.Image
	if image == "" {
		image = DefaultProfileImage
	}
	return Profile{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     image,
		Following: following,
	}
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput applies only the fields that are non-nil.
// An absent field leaves the stored value untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Bio      *string
	Image    *string
	Password *string
}

// UserRepository defines the contract for user and follow-relation persistence.
type UserRepository interface {
	// GetByID retrieves a user by id.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their lowercase username.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByEmail retrieves a user by their lowercase email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByIDs retrieves users for the given ids, in no particular order.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// Insert creates a new user account.
	// Backfills the ID on success. Returns ErrConflict on a
	// username/email uniqueness violation.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's stored fields.
	// Returns ErrConflict on a username/email uniqueness violation.
	Update(ctx context.Context, u *User) error

	// Follow inserts a follow edge. Idempotent.
	Follow(ctx context.Context, followerID, followeeID int64) error

	// Unfollow removes a follow edge. Idempotent.
	Unfollow(ctx context.Context, followerID, followeeID int64) error

	// IsFollowing reports whether the follow edge exists.
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)

	// FollowingIDs lists the ids of every user followed by userID.
	FollowingIDs(ctx context.Context, userID int64) ([]int64, error)

	// FollowingSet reports, for each of targetIDs, whether userID follows it.
	FollowingSet(ctx context.Context, userID int64, targetIDs []int64) (map[int64]bool, error)
}

// UserUsecase defines the business logic contract for identity operations.
type UserUsecase interface {
	// Register creates an account and returns it with a fresh session token.
	Register(ctx context.Context, input RegisterInput) (User, string, error)

	// Login verifies email+password credentials and returns the user with
	// a fresh session token.
	Login(ctx context.Context, email, password string) (User, string, error)

	// Get resolves the current user by id.
	Get(ctx context.Context, id int64) (User, error)

	// Update applies the non-nil fields of input to the user.
	// A present password re-derives the stored credentials.
	Update(ctx context.Context, id int64, input UpdateUserInput) (User, error)

	// Profile projects the named user for the given viewer.
	// viewerID == 0 means anonymous.
	Profile(ctx context.Context, username string, viewerID int64) (Profile, error)

	// Follow subscribes follower to the named user's content. Idempotent.
	Follow(ctx context.Context, followerID int64, username string) (Profile, error)

	// Unfollow removes the subscription. Idempotent.
	Unfollow(ctx context.Context, followerID int64, username string) (Profile, error)
}
