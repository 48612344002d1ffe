package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"offcampus/internal/models/request_models"
	"offcampus/internal/repositories"
)

func TestProfileLazyCreationAndUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserDetailsRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "free", profile.UserType, "first read creates the free-tier row")

	description := "Backend developer, 3 YoE"
	experience := datatypes.JSON([]byte(`[{"company":"Acme","years":3}]`))
	updated, err := svc.UpdateProfile(ctx, "user_1", request_models.UpdateProfileRequest{
		UserDescription: &description,
		Experience:      &experience,
	})
	require.NoError(t, err)
	assert.Equal(t, description, updated.UserDescription)
	assert.JSONEq(t, `[{"company":"Acme","years":3}]`, string(updated.Experience))
	assert.Equal(t, "free", updated.UserType, "profile edits never touch the tier")

	// Omitted fields keep their values.
	pfp := "https://cdn.example/pfp.png"
	updated, err = svc.UpdateProfile(ctx, "user_1", request_models.UpdateProfileRequest{UserPfp: &pfp})
	require.NoError(t, err)
	assert.Equal(t, description, updated.UserDescription)
	assert.Equal(t, pfp, updated.UserPfp)
}

func TestListProfiles(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserDetailsRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, "user_1")
	require.NoError(t, err)
	_, err = svc.GetProfile(ctx, "user_2")
	require.NoError(t, err)

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
