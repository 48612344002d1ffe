package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// GetMe godoc
// @Summary The caller's profile and plan tier
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /users/me [get]
func (u *UserController) GetMe(c *gin.Context) {
	profile, err := u.userService.GetProfile(c.Request.Context(), actorFrom(c).UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "")
}

// UpdateMe godoc
// @Summary Update the caller's profile fields
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Router /users/me [put]
func (u *UserController) UpdateMe(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := u.userService.UpdateProfile(c.Request.Context(), actorFrom(c).UserID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated")
}

// ListAll godoc
// @Summary All user profiles
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (u *UserController) ListAll(c *gin.Context) {
	profiles, err := u.userService.ListProfiles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"users": profiles, "count": len(profiles)}, "")
}
