package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"offcampus/internal/models/db_models"
)

type KitRepositoryInterface interface {
	Create(ctx context.Context, kit *db_models.InterviewKit) error
	GetByID(ctx context.Context, kitID string) (*db_models.InterviewKit, error)
	ListPublished(ctx context.Context) ([]db_models.InterviewKit, error)
	ListAll(ctx context.Context) ([]db_models.InterviewKit, error)
	Update(ctx context.Context, kitID string, fields map[string]interface{}) (*db_models.InterviewKit, error)
	Delete(ctx context.Context, kitID string) error
}

type kitRepository struct {
	db *gorm.DB
}

func NewKitRepository(db *gorm.DB) KitRepositoryInterface {
	return &kitRepository{db: db}
}

func (k *kitRepository) Create(ctx context.Context, kit *db_models.InterviewKit) error {
	return k.db.WithContext(ctx).Create(kit).Error
}

func (k *kitRepository) GetByID(ctx context.Context, kitID string) (*db_models.InterviewKit, error) {
	var kit db_models.InterviewKit
	err := k.db.WithContext(ctx).First(&kit, "kit_id = ?", kitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &kit, nil
}

func (k *kitRepository) ListPublished(ctx context.Context) ([]db_models.InterviewKit, error) {
	var kits []db_models.InterviewKit
	err := k.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&kits).Error
	return kits, err
}

func (k *kitRepository) ListAll(ctx context.Context) ([]db_models.InterviewKit, error) {
	var kits []db_models.InterviewKit
	err := k.db.WithContext(ctx).Order("created_at DESC").Find(&kits).Error
	return kits, err
}

func (k *kitRepository) Update(ctx context.Context, kitID string, fields map[string]interface{}) (*db_models.InterviewKit, error) {
	result := k.db.WithContext(ctx).
		Model(&db_models.InterviewKit{}).
		Where("kit_id = ?", kitID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return k.GetByID(ctx, kitID)
}

func (k *kitRepository) Delete(ctx context.Context, kitID string) error {
	return k.db.WithContext(ctx).
		Where("kit_id = ?", kitID).
		Delete(&db_models.InterviewKit{}).Error
}
