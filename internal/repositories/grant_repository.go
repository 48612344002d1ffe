package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offcampus/internal/models/db_models"
)

// ResourceGrantRow couples a grant with its item name for subscription feeds.
type ResourceGrantRow struct {
	db_models.UserResource
	ResourceName string
}

type KitGrantRow struct {
	db_models.UserInterviewKit
	KitName string
}

type GrantRepositoryInterface interface {
	UpsertResourceGrant(ctx context.Context, userID, resourceID, signedURL string) (*db_models.UserResource, error)
	GetResourceGrant(ctx context.Context, userID, resourceID string) (*db_models.UserResource, error)
	ListResourceGrants(ctx context.Context, userID string) ([]ResourceGrantRow, error)
	ListAllResourceGrants(ctx context.Context) ([]ResourceGrantRow, error)

	UpsertKitGrant(ctx context.Context, userID, kitID, kitURL string) (*db_models.UserInterviewKit, error)
	GetKitGrant(ctx context.Context, userID, kitID string) (*db_models.UserInterviewKit, error)
	ListKitGrants(ctx context.Context, userID string) ([]KitGrantRow, error)
	ListAllKitGrants(ctx context.Context) ([]KitGrantRow, error)
}

type grantRepository struct {
	db *gorm.DB
}

func NewGrantRepository(db *gorm.DB) GrantRepositoryInterface {
	return &grantRepository{db: db}
}

func (g *grantRepository) UpsertResourceGrant(ctx context.Context, userID, resourceID, signedURL string) (*db_models.UserResource, error) {
	grant := db_models.UserResource{
		UserID:     userID,
		ResourceID: resourceID,
		SignedURL:  signedURL,
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"signed_url", "updated_at"}),
	}).Create(&grant).Error
	if err != nil {
		return nil, err
	}
	return g.GetResourceGrant(ctx, userID, resourceID)
}

func (g *grantRepository) GetResourceGrant(ctx context.Context, userID, resourceID string) (*db_models.UserResource, error) {
	var grant db_models.UserResource
	err := g.db.WithContext(ctx).
		First(&grant, "user_id = ? AND resource_id = ?", userID, resourceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (g *grantRepository) ListResourceGrants(ctx context.Context, userID string) ([]ResourceGrantRow, error) {
	var rows []ResourceGrantRow
	err := g.db.WithContext(ctx).
		Table("user_resources").
		Select("user_resources.*, resources.resource_name").
		Joins("JOIN resources ON resources.resource_id = user_resources.resource_id").
		Where("user_resources.user_id = ?", userID).
		Scan(&rows).Error
	return rows, err
}

func (g *grantRepository) ListAllResourceGrants(ctx context.Context) ([]ResourceGrantRow, error) {
	var rows []ResourceGrantRow
	err := g.db.WithContext(ctx).
		Table("user_resources").
		Select("user_resources.*, resources.resource_name").
		Joins("JOIN resources ON resources.resource_id = user_resources.resource_id").
		Scan(&rows).Error
	return rows, err
}

func (g *grantRepository) UpsertKitGrant(ctx context.Context, userID, kitID, kitURL string) (*db_models.UserInterviewKit, error) {
	grant := db_models.UserInterviewKit{
		UserID: userID,
		KitID:  kitID,
		KitURL: kitURL,
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "kit_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kit_url", "updated_at"}),
	}).Create(&grant).Error
	if err != nil {
		return nil, err
	}
	return g.GetKitGrant(ctx, userID, kitID)
}

func (g *grantRepository) GetKitGrant(ctx context.Context, userID, kitID string) (*db_models.UserInterviewKit, error) {
	var grant db_models.UserInterviewKit
	err := g.db.WithContext(ctx).
		First(&grant, "user_id = ? AND kit_id = ?", userID, kitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (g *grantRepository) ListKitGrants(ctx context.Context, userID string) ([]KitGrantRow, error) {
	var rows []KitGrantRow
	err := g.db.WithContext(ctx).
		Table("user_interview_kits").
		Select("user_interview_kits.*, interview_preparation_kits.kit_name").
		Joins("JOIN interview_preparation_kits ON interview_preparation_kits.kit_id = user_interview_kits.kit_id").
		Where("user_interview_kits.user_id = ?", userID).
		Scan(&rows).Error
	return rows, err
}

func (g *grantRepository) ListAllKitGrants(ctx context.Context) ([]KitGrantRow, error) {
	var rows []KitGrantRow
	err := g.db.WithContext(ctx).
		Table("user_interview_kits").
		Select("user_interview_kits.*, interview_preparation_kits.kit_name").
		Joins("JOIN interview_preparation_kits ON interview_preparation_kits.kit_id = user_interview_kits.kit_id").
		Scan(&rows).Error
	return rows, err
}
