package request_models

import "gorm.io/datatypes"

// UpdateProfileRequest carries only the fields a user may edit. Plan and tier
// columns are owned by the payment flow and never accepted here.
type UpdateProfileRequest struct {
	UserProfileBg     *string         `json:"userProfileBg"`
	UserPfp           *string         `json:"userPfp"`
	UserDescription   *string         `json:"userDescription"`
	SkillAndExpertise *string         `json:"skillAndExpertise"`
	Experience        *datatypes.JSON `json:"experience"`
	Education         *datatypes.JSON `json:"education"`
}
