package services

import (
	"context"
	"fmt"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
	ListProfiles(ctx context.Context) ([]response_models.ProfileResponse, error)
}

type userService struct {
	userDetails repositories.UserDetailsRepositoryInterface
	accounts    repositories.AccountRepositoryInterface
}

func NewUserService(
	userDetails repositories.UserDetailsRepositoryInterface,
	accounts repositories.AccountRepositoryInterface,
) UserServiceInterface {
	return &userService{userDetails: userDetails, accounts: accounts}
}

func (u *userService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	if err := u.userDetails.EnsureDefault(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	details, err := u.userDetails.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: profile %s", utils.ErrNotFound, userID)
	}
	resp := toProfileResponse(details)
	if account, err := u.accounts.FindByID(ctx, userID); err == nil && account != nil {
		resp.Name = account.Name
		resp.Email = account.Email
	}
	return &resp, nil
}

// UpdateProfile writes only the fields present in the request. Tier columns
// are reachable solely through the payment flow's SetPlan.
func (u *userService) UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	if err := u.userDetails.EnsureDefault(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	fields := map[string]interface{}{}
	if req.UserProfileBg != nil {
		fields["user_profile_bg"] = *req.UserProfileBg
	}
	if req.UserPfp != nil {
		fields["user_pfp"] = *req.UserPfp
	}
	if req.UserDescription != nil {
		fields["user_description"] = *req.UserDescription
	}
	if req.SkillAndExpertise != nil {
		fields["skill_and_expertise"] = *req.SkillAndExpertise
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}

	details, err := u.userDetails.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: update profile: %v", utils.ErrDatabaseError, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: profile %s", utils.ErrNotFound, userID)
	}
	resp := toProfileResponse(details)
	return &resp, nil
}

func (u *userService) ListProfiles(ctx context.Context) ([]response_models.ProfileResponse, error) {
	rows, err := u.userDetails.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]response_models.ProfileResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toProfileResponse(&rows[i]))
	}
	return out, nil
}

func toProfileResponse(details *db_models.UserDetails) response_models.ProfileResponse {
	return response_models.ProfileResponse{
		UserID:            details.UserID,
		UserType:          details.UserType,
		PlanType:          details.PlanType,
		UserProfileBg:     details.UserProfileBg,
		UserPfp:           details.UserPfp,
		UserDescription:   details.UserDescription,
		SkillAndExpertise: details.SkillAndExpertise,
		Experience:        details.Experience,
		Education:         details.Education,
		CreatedAt:         details.CreatedAt,
		UpdatedAt:         details.UpdatedAt,
	}
}
