package db_models

import (
	"time"

	"gorm.io/gorm"

	"offcampus/pkg/utils"
)

type InterviewKit struct {
	KitID       string `gorm:"type:varchar(24);primaryKey;column:kit_id"`
	KitName     string `gorm:"size:255;not null"`
	Description string
	KitURL      string `gorm:"size:1024"`
	KitFee      int64
	Published   bool `gorm:"default:false;index"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (InterviewKit) TableName() string { return "interview_preparation_kits" }

func (k *InterviewKit) BeforeCreate(tx *gorm.DB) error {
	if k.KitID == "" {
		k.KitID = utils.GenerateID(utils.DefaultIDLength)
	}
	now := time.Now().Unix()
	k.CreatedAt = now
	k.UpdatedAt = now
	return nil
}
