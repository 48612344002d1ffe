package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"offcampus/internal/models/db_models"
)

type ResourceRepositoryInterface interface {
	Create(ctx context.Context, resource *db_models.Resource) error
	GetByID(ctx context.Context, resourceID string) (*db_models.Resource, error)
	ListPublished(ctx context.Context) ([]db_models.Resource, error)
	ListAll(ctx context.Context) ([]db_models.Resource, error)
	Update(ctx context.Context, resourceID string, fields map[string]interface{}) (*db_models.Resource, error)
	Delete(ctx context.Context, resourceID string) error
	IncrementDownloads(ctx context.Context, resourceID string) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepositoryInterface {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *db_models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) GetByID(ctx context.Context, resourceID string) (*db_models.Resource, error) {
	var resource db_models.Resource
	err := r.db.WithContext(ctx).First(&resource, "resource_id = ?", resourceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) ListPublished(ctx context.Context) ([]db_models.Resource, error) {
	var resources []db_models.Resource
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) ListAll(ctx context.Context) ([]db_models.Resource, error) {
	var resources []db_models.Resource
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) Update(ctx context.Context, resourceID string, fields map[string]interface{}) (*db_models.Resource, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Resource{}).
		Where("resource_id = ?", resourceID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, resourceID)
}

func (r *resourceRepository) Delete(ctx context.Context, resourceID string) error {
	return r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Delete(&db_models.Resource{}).Error
}

func (r *resourceRepository) IncrementDownloads(ctx context.Context, resourceID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Resource{}).
		Where("resource_id = ?", resourceID).
		UpdateColumn("total_downloads", gorm.Expr("total_downloads + 1")).Error
}
