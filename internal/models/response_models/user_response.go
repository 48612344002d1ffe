package response_models

import "gorm.io/datatypes"

type ProfileResponse struct {
	UserID            string         `json:"userId"`
	Name              string         `json:"name,omitempty"`
	Email             string         `json:"email,omitempty"`
	UserType          string         `json:"userType"`
	PlanType          string         `json:"planType"`
	UserProfileBg     string         `json:"userProfileBg,omitempty"`
	UserPfp           string         `json:"userPfp,omitempty"`
	UserDescription   string         `json:"userDescription,omitempty"`
	SkillAndExpertise string         `json:"skillAndExpertise,omitempty"`
	Experience        datatypes.JSON `json:"experience,omitempty"`
	Education         datatypes.JSON `json:"education,omitempty"`
	CreatedAt         int64          `json:"createdAt"`
	UpdatedAt         int64          `json:"updatedAt"`
}
