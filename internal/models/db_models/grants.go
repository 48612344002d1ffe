package db_models

// UserResource grants one user access to one purchased resource. The composite
// key keeps at most one row per (user, resource); re-granting overwrites the
// URL and bumps updated_at.
type UserResource struct {
	UserID     string `gorm:"type:varchar(24);primaryKey"`
	ResourceID string `gorm:"type:varchar(24);primaryKey"`
	SignedURL  string `gorm:"size:1024"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
}

func (UserResource) TableName() string { return "user_resources" }

// UserInterviewKit is the kit-shaped twin of UserResource.
type UserInterviewKit struct {
	UserID    string `gorm:"type:varchar(24);primaryKey"`
	KitID     string `gorm:"type:varchar(24);primaryKey"`
	KitURL    string `gorm:"size:1024"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (UserInterviewKit) TableName() string { return "user_interview_kits" }
