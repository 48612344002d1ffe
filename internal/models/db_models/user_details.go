package db_models

import (
	"gorm.io/datatypes"
)

// UserDetails carries the per-user profile plus the entitlement tier.
// user_type and plan_type are kept mirror-equal whenever either is set through
// SetPlan; that denormalization predates this service and is preserved as-is.
type UserDetails struct {
	UserID   string `gorm:"type:varchar(24);primaryKey;column:user_id"`
	UserType string `gorm:"size:50;default:free"`
	PlanType string `gorm:"size:50"`

	UserProfileBg     string `gorm:"size:512"`
	UserPfp           string `gorm:"size:512"`
	UserDescription   string
	SkillAndExpertise string
	Experience        datatypes.JSON `gorm:"type:jsonb"`
	Education         datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (UserDetails) TableName() string { return "user_details" }
