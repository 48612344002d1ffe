package db_models

import (
	"time"

	"gorm.io/gorm"

	"offcampus/pkg/utils"
)

type Resource struct {
	ResourceID       string `gorm:"type:varchar(24);primaryKey;column:resource_id"`
	ResourceName     string `gorm:"size:255;not null"`
	ShortDescription string
	WhatYouGet       string
	DownloadLink     string `gorm:"size:1024"`
	BannerImage      string `gorm:"size:1024"`
	ResourceFee      int64  // in smallest currency unit
	TotalDownloads   int64  `gorm:"default:0"`
	Published        bool   `gorm:"default:false;index"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ResourceID == "" {
		r.ResourceID = utils.GenerateID(utils.DefaultIDLength)
	}
	now := time.Now().Unix()
	r.CreatedAt = now
	r.UpdatedAt = now
	return nil
}
