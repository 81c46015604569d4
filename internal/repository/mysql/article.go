package mysql

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.ArticleDBRepository = (*articleRepository)(nil)

// NewArticleDBRepository 创建数据库操作层
func NewArticleDBRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetBySlug(ctx context.Context, slug string) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	res := article.ToDomain()
	tags, err := m.tagsFor(ctx, []int64{article.ID})
	if err != nil {
		return domain.Article{}, err
	}
	res.TagList = tags[article.ID]
	return res, nil
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	res := article.ToDomain()
	tags, err := m.tagsFor(ctx, []int64{article.ID})
	if err != nil {
		return domain.Article{}, err
	}
	res.TagList = tags[article.ID]
	return res, nil
}

// Fetch lists articles matching the query, newest-created-first, and the
// total number of matches before pagination. Filters compose conjunctively.
func (m *articleRepository) Fetch(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int64, error) {
	repository.ClampPage(&q.Limit, &q.Offset)

	base := m.DB.WithContext(ctx).Model(&model.Article{})
	if q.Tag != "" {
		base = base.Where("id IN (?)", m.DB.WithContext(ctx).
			Model(&model.ArticleTag{}).
			Select("article_id").
			Where("tag = ?", q.Tag))
	}
	if q.AuthorID != 0 {
		base = base.Where("author_id = ?", q.AuthorID)
	}
	if len(q.AuthorIDs) > 0 {
		base = base.Where("author_id IN ?", q.AuthorIDs)
	}
	if len(q.IDs) > 0 {
		base = base.Where("id IN ?", q.IDs)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err := base.
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	tags, err := m.tagsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
		res[i].TagList = tags[articles[i].ID]
	}
	return res, total, nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		articleModel := model.NewArticleFromDomain(a)
		if err := tx.Create(&articleModel).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, articleModel.ID, a.TagList); err != nil {
			return err
		}
		a.ID = articleModel.ID
		a.CreatedAt = articleModel.CreatedAt
		a.UpdatedAt = articleModel.UpdatedAt
		return nil
	})
	return translateError(err)
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		articleModel := model.NewArticleFromDomain(a)
		result := tx.Model(&model.Article{}).
			Where("id = ?", a.ID).
			Select("slug", "title", "description", "body", "favorites_count", "updated_at").
			Updates(&articleModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return replaceTags(tx, a.ID, a.TagList)
	})
	return translateError(err)
}

// Delete cascades: the comments, favorite rows and tag rows of the
// article go with it in one transaction.
func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Where("article_id = ?", id).Delete(&model.ArticleTag{}).Error
	})
}

func (m *articleRepository) AddFavorite(ctx context.Context, userID, articleID int64) error {
	favorite := &model.Favorite{
		UserID:    userID,
		ArticleID: articleID,
	}
	// set insert: favoriting twice is a no-op
	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite)
	return translateError(result.Error)
}

func (m *articleRepository) RemoveFavorite(ctx context.Context, userID, articleID int64) error {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.Favorite{})
	return result.Error
}

func (m *articleRepository) FavoritedSet(ctx context.Context, userID int64, articleIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(articleIDs))
	if userID == 0 || len(articleIDs) == 0 {
		return res, nil
	}
	var favorited []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ? AND article_id IN ?", userID, articleIDs).
		Pluck("article_id", &favorited).
		Error
	if err != nil {
		return nil, err
	}
	for _, id := range favorited {
		res[id] = true
	}
	return res, nil
}

func (m *articleRepository) FavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &ids).
		Error
	return ids, err
}

// RecountFavorites recomputes the denormalized count from the favorite
// relation inside one transaction. Never applies a delta.
func (m *articleRepository) RecountFavorites(ctx context.Context, articleID int64) (int64, error) {
	var realCount int64
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Favorite{}).
			Where("article_id = ?", articleID).
			Count(&realCount).Error; err != nil {
			return err
		}
		return tx.Model(&model.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("favorites_count", realCount).Error
	})
	return realCount, err
}

func (m *articleRepository) RecountAllFavorites(ctx context.Context) error {
	return m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("1 = 1").
		UpdateColumn("favorites_count", gorm.Expr(
			"(SELECT COUNT(*) FROM user_favorites WHERE user_favorites.article_id = articles.id)",
		)).Error
}

func (m *articleRepository) DistinctTags(ctx context.Context) ([]string, error) {
	var tags []string
	err := m.DB.WithContext(ctx).
		Model(&model.ArticleTag{}).
		Distinct("tag").
		Pluck("tag", &tags).
		Error
	return tags, err
}

func (m *articleRepository) FetchSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Pluck("slug", &slugs).
		Error
	return slugs, err
}

// tagsFor loads the ordered tag lists for the given article ids.
func (m *articleRepository) tagsFor(ctx context.Context, articleIDs []int64) (map[int64][]string, error) {
	res := make(map[int64][]string, len(articleIDs))
	if len(articleIDs) == 0 {
		return res, nil
	}
	var rows []model.ArticleTag
	err := m.DB.WithContext(ctx).
		Where("article_id IN ?", articleIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ArticleID != rows[j].ArticleID {
			return rows[i].ArticleID < rows[j].ArticleID
		}
		return rows[i].Position < rows[j].Position
	})
	for _, row := range rows {
		res[row.ArticleID] = append(res[row.ArticleID], row.Tag)
	}
	return res, nil
}

func replaceTags(tx *gorm.DB, articleID int64, tagList []string) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&model.ArticleTag{}).Error; err != nil {
		return err
	}
	if len(tagList) == 0 {
		return nil
	}
	rows := make([]model.ArticleTag, 0, len(tagList))
	seen := make(map[string]bool, len(tagList))
	for i, tag := range tagList {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		rows = append(rows, model.ArticleTag{
			ArticleID: articleID,
			Tag:       tag,
			Position:  i,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
