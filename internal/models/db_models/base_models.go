package db_models

import (
	"time"

	"gorm.io/gorm"

	"offcampus/pkg/utils"
)

// BaseModel is embedded by rows keyed on a short random identifier. Payments
// are the exception and keep an append-only serial key.
type BaseModel struct {
	ID        string `gorm:"type:varchar(24);primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = utils.GenerateID(utils.DefaultIDLength)
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
