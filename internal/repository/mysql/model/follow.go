package model

import "time"

// Follow is one edge of the follow relation: follower subscribes to
// the followee's authored content.
type Follow struct {
	FollowerID int64     `gorm:"column:follower_id;primaryKey;autoIncrement:false"`
	FolloweeID int64     `gorm:"column:followee_id;primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "user_follows"
}
