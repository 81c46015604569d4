package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id IN ?", ids).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return translateError(result.Error)
	}

	u.ID = userModel.ID
	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt

	return nil
}

func (m *userRepository) Update(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", u.ID).
		Select("username", "email", "bio", "image", "password_hash", "password_salt").
		Updates(&userModel)
	if result.Error != nil {
		return translateError(result.Error)
	}

	return nil
}

func (m *userRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	follow := &model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	// set insert: a repeated follow is a no-op
	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow)
	return translateError(result.Error)
}

func (m *userRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	return result.Error
}

func (m *userRepository) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (m *userRepository) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).
		Error
	return ids, err
}

func (m *userRepository) FollowingSet(ctx context.Context, userID int64, targetIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(targetIDs))
	if userID == 0 || len(targetIDs) == 0 {
		return res, nil
	}
	var followed []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id IN ?", userID, targetIDs).
		Pluck("followee_id", &followed).
		Error
	if err != nil {
		return nil, err
	}
	for _, id := range followed {
		res[id] = true
	}
	return res, nil
}
