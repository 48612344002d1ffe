package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offcampus/internal/models/db_models"
)

type UserDetailsRepositoryInterface interface {
	// EnsureDefault lazily creates the row with the free tier. Conflict on an
	// existing row is ignored.
	EnsureDefault(ctx context.Context, userID string) error
	GetByUserID(ctx context.Context, userID string) (*db_models.UserDetails, error)
	// SetPlan writes plan_type and user_type together; the two columns are
	// kept mirror-equal on purpose (see UserDetails).
	SetPlan(ctx context.Context, userID, planType string) (*db_models.UserDetails, error)
	UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*db_models.UserDetails, error)
	ListAll(ctx context.Context) ([]db_models.UserDetails, error)
}

type userDetailsRepository struct {
	db *gorm.DB
}

func NewUserDetailsRepository(db *gorm.DB) UserDetailsRepositoryInterface {
	return &userDetailsRepository{db: db}
}

func (u *userDetailsRepository) EnsureDefault(ctx context.Context, userID string) error {
	details := db_models.UserDetails{UserID: userID, UserType: "free"}
	return u.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&details).Error
}

func (u *userDetailsRepository) GetByUserID(ctx context.Context, userID string) (*db_models.UserDetails, error) {
	var details db_models.UserDetails
	err := u.db.WithContext(ctx).First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

func (u *userDetailsRepository) SetPlan(ctx context.Context, userID, planType string) (*db_models.UserDetails, error) {
	result := u.db.WithContext(ctx).
		Model(&db_models.UserDetails{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"plan_type": planType,
			"user_type": planType,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return u.GetByUserID(ctx, userID)
}

func (u *userDetailsRepository) UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*db_models.UserDetails, error) {
	if len(fields) > 0 {
		err := u.db.WithContext(ctx).
			Model(&db_models.UserDetails{}).
			Where("user_id = ?", userID).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return u.GetByUserID(ctx, userID)
}

func (u *userDetailsRepository) ListAll(ctx context.Context) ([]db_models.UserDetails, error) {
	var rows []db_models.UserDetails
	err := u.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}
