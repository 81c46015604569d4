package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrNotFound
		}
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
