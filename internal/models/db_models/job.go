package db_models

import (
	"time"

	"gorm.io/gorm"

	"offcampus/pkg/utils"
)

const (
	JobTypeJob        = "job"
	JobTypeInternship = "internship"
)

type Job struct {
	JobID string `gorm:"type:varchar(24);primaryKey;column:job_id"`
	Type  string `gorm:"size:20;not null;index"` // job | internship

	JobRole         string `gorm:"size:255"`
	CompanyGiving   string `gorm:"size:255"`
	JobType         string `gorm:"size:50"` // full-time, part-time, remote...
	Location        string `gorm:"size:255"`
	WhoCanApply     string
	LastDateToApply string `gorm:"size:50"`
	RedirectLink    string `gorm:"size:1024"`
	RecruiterEmail  string `gorm:"size:255"`
	Description     string
	Stipend         string `gorm:"size:100"`
	Duration        string `gorm:"size:100"`
	Experience      string `gorm:"size:100"`

	Published bool `gorm:"default:false;index"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.JobID == "" {
		j.JobID = utils.GenerateID(utils.DefaultIDLength)
	}
	now := time.Now().Unix()
	j.CreatedAt = now
	j.UpdatedAt = now
	return nil
}
