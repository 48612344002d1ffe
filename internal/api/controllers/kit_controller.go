package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type KitController struct {
	kitService      services.KitServiceInterface
	purchaseService services.PurchaseServiceInterface
}

func NewKitController(
	kitService services.KitServiceInterface,
	purchaseService services.PurchaseServiceInterface,
) *KitController {
	return &KitController{
		kitService:      kitService,
		purchaseService: purchaseService,
	}
}

// ListPublished godoc
// @Summary Published interview kits
// @Tags Kits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /kits [get]
func (k *KitController) ListPublished(c *gin.Context) {
	kits, err := k.kitService.ListPublished(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"kits": kits, "count": len(kits)}, "")
}

// ListAll godoc
// @Summary All interview kits including drafts
// @Tags Kits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/kits [get]
func (k *KitController) ListAll(c *gin.Context) {
	kits, err := k.kitService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"kits": kits, "count": len(kits)}, "")
}

// Create godoc
// @Summary Create an interview kit
// @Tags Kits
// @Accept json
// @Produce json
// @Param request body request_models.UpsertKitRequest true "Kit payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/kits [post]
func (k *KitController) Create(c *gin.Context) {
	var req request_models.UpsertKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	kit, err := k.kitService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, kit, "Kit created")
}

// Update godoc
// @Summary Replace an interview kit
// @Tags Kits
// @Accept json
// @Produce json
// @Param kitId path string true "Kit id"
// @Param request body request_models.UpsertKitRequest true "Kit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/kits/{kitId} [put]
func (k *KitController) Update(c *gin.Context) {
	var req request_models.UpsertKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	kit, err := k.kitService.Update(c.Request.Context(), c.Param("kitId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, kit, "Kit updated")
}

// Delete godoc
// @Summary Delete an interview kit
// @Tags Kits
// @Produce json
// @Param kitId path string true "Kit id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/kits/{kitId} [delete]
func (k *KitController) Delete(c *gin.Context) {
	if err := k.kitService.Delete(c.Request.Context(), c.Param("kitId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Kit deleted")
}

// VerifyPurchase godoc
// @Summary Verify a kit checkout and grant access
// @Tags Kits
// @Accept json
// @Produce json
// @Param request body request_models.VerifyKitPurchaseRequest true "Checkout result"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /kits/verify-purchase [post]
func (k *KitController) VerifyPurchase(c *gin.Context) {
	var req request_models.VerifyKitPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	grant, err := k.purchaseService.VerifyKitPurchase(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, grant, "Purchase verified")
}

// GetAccess godoc
// @Summary Whether the caller can open a kit
// @Tags Kits
// @Produce json
// @Param kitId path string true "Kit id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /kits/{kitId}/access [get]
func (k *KitController) GetAccess(c *gin.Context) {
	actor := actorFrom(c)
	userID := c.Query("userId")
	if userID == "" {
		userID = actor.UserID
	}

	access, err := k.purchaseService.GetKitAccess(c.Request.Context(), userID, c.Param("kitId"), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, access, "")
}
