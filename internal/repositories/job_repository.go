package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"offcampus/internal/models/db_models"
)

type JobRepositoryInterface interface {
	Create(ctx context.Context, job *db_models.Job) error
	GetByID(ctx context.Context, jobID string) (*db_models.Job, error)
	ListPublished(ctx context.Context) ([]db_models.Job, error)
	ListAll(ctx context.Context) ([]db_models.Job, error)
	Update(ctx context.Context, jobID string, fields map[string]interface{}) (*db_models.Job, error)
	Delete(ctx context.Context, jobID string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepositoryInterface {
	return &jobRepository{db: db}
}

func (j *jobRepository) Create(ctx context.Context, job *db_models.Job) error {
	return j.db.WithContext(ctx).Create(job).Error
}

func (j *jobRepository) GetByID(ctx context.Context, jobID string) (*db_models.Job, error) {
	var job db_models.Job
	err := j.db.WithContext(ctx).First(&job, "job_id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (j *jobRepository) ListPublished(ctx context.Context) ([]db_models.Job, error) {
	var jobs []db_models.Job
	err := j.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (j *jobRepository) ListAll(ctx context.Context) ([]db_models.Job, error) {
	var jobs []db_models.Job
	err := j.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (j *jobRepository) Update(ctx context.Context, jobID string, fields map[string]interface{}) (*db_models.Job, error) {
	result := j.db.WithContext(ctx).
		Model(&db_models.Job{}).
		Where("job_id = ?", jobID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return j.GetByID(ctx, jobID)
}

func (j *jobRepository) Delete(ctx context.Context, jobID string) error {
	return j.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Delete(&db_models.Job{}).Error
}
