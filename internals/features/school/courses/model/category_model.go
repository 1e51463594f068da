package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CategoryModel - course grouping, branch-owned.
   ======================================================= */

type CategoryModel struct {
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;primaryKey;column:category_id;default:gen_random_uuid()"`

	CategoryBranchID uuid.UUID `json:"category_branch_id" gorm:"type:uuid;not null;column:category_branch_id;uniqueIndex:uq_categories_branch_name"`
	CategoryName     string    `json:"category_name" gorm:"type:varchar(100);not null;column:category_name;uniqueIndex:uq_categories_branch_name"`

	CategoryCreatedAt time.Time      `json:"category_created_at" gorm:"column:category_created_at;not null;autoCreateTime"`
	CategoryUpdatedAt time.Time      `json:"category_updated_at" gorm:"column:category_updated_at;not null;autoUpdateTime"`
	CategoryDeletedAt gorm.DeletedAt `json:"category_deleted_at,omitempty" gorm:"column:category_deleted_at;index"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
