package infrastructure

import (
	"gorm.io/gorm"
)

type ResourceCounter struct {
	DB *gorm.DB
}

func (r *ResourceCounter) CountLists(userID string) (int64, error) {
	var count int64
	err := r.DB.Table("lists").Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
