package model

import "time"

// Favorite is one edge of the favorite relation. favorites_count on the
// article is always recomputed from these rows, never trusted.
type Favorite struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	ArticleID int64     `gorm:"column:article_id;primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}
