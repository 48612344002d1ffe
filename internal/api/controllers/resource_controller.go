package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type ResourceController struct {
	resourceService services.ResourceServiceInterface
	purchaseService services.PurchaseServiceInterface
}

func NewResourceController(
	resourceService services.ResourceServiceInterface,
	purchaseService services.PurchaseServiceInterface,
) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		purchaseService: purchaseService,
	}
}

// ListPublished godoc
// @Summary Published resources for the storefront
// @Tags Resources
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /resources [get]
func (r *ResourceController) ListPublished(c *gin.Context) {
	resources, err := r.resourceService.ListPublished(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"resources": resources, "count": len(resources)}, "")
}

// ListAll godoc
// @Summary All resources including drafts
// @Tags Resources
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/resources [get]
func (r *ResourceController) ListAll(c *gin.Context) {
	resources, err := r.resourceService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"resources": resources, "count": len(resources)}, "")
}

// Create godoc
// @Summary Create a resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param request body request_models.UpsertResourceRequest true "Resource payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/resources [post]
func (r *ResourceController) Create(c *gin.Context) {
	var req request_models.UpsertResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resource, err := r.resourceService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resource, "Resource created")
}

// Update godoc
// @Summary Replace a resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param resourceId path string true "Resource id"
// @Param request body request_models.UpsertResourceRequest true "Resource payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/resources/{resourceId} [put]
func (r *ResourceController) Update(c *gin.Context) {
	var req request_models.UpsertResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resource, err := r.resourceService.Update(c.Request.Context(), c.Param("resourceId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resource, "Resource updated")
}

// Delete godoc
// @Summary Delete a resource
// @Tags Resources
// @Produce json
// @Param resourceId path string true "Resource id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/resources/{resourceId} [delete]
func (r *ResourceController) Delete(c *gin.Context) {
	if err := r.resourceService.Delete(c.Request.Context(), c.Param("resourceId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Resource deleted")
}

// VerifyPurchase godoc
// @Summary Verify a resource checkout and grant access
// @Tags Resources
// @Accept json
// @Produce json
// @Param request body request_models.VerifyResourcePurchaseRequest true "Checkout result"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /resources/verify-purchase [post]
func (r *ResourceController) VerifyPurchase(c *gin.Context) {
	var req request_models.VerifyResourcePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	grant, err := r.purchaseService.VerifyResourcePurchase(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, grant, "Purchase verified")
}

// GetAccess godoc
// @Summary Whether the caller can download a resource
// @Tags Resources
// @Produce json
// @Param resourceId path string true "Resource id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /resources/{resourceId}/access [get]
func (r *ResourceController) GetAccess(c *gin.Context) {
	actor := actorFrom(c)
	userID := c.Query("userId")
	if userID == "" {
		userID = actor.UserID
	}

	access, err := r.purchaseService.GetResourceAccess(c.Request.Context(), userID, c.Param("resourceId"), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, access, "")
}
