package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

// CronController exposes maintenance endpoints for an external scheduler.
// Callers authenticate with the X-Cron-Secret header instead of a JWT.
type CronController struct {
	notificationService services.NotificationServiceInterface
	secret              string
}

func NewCronController(notificationService services.NotificationServiceInterface) *CronController {
	return &CronController{
		notificationService: notificationService,
		secret:              os.Getenv("CRON_SECRET"),
	}
}

func (cr *CronController) authorized(c *gin.Context) bool {
	if cr.secret == "" {
		return false
	}
	given := c.GetHeader("X-Cron-Secret")
	return subtle.ConstantTimeCompare([]byte(given), []byte(cr.secret)) == 1
}

// CleanupNotifications godoc
// @Summary Delete notifications past the retention window
// @Tags Cron
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /cron/cleanup-notifications [post]
func (cr *CronController) CleanupNotifications(c *gin.Context) {
	if !cr.authorized(c) {
		utils.RespondError(c, http.StatusUnauthorized, "invalid cron secret")
		return
	}

	deleted, err := cr.notificationService.DeleteOld(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": deleted}, "Cleanup complete")
}
