package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List godoc
// @Summary Notifications visible to the caller
// @Tags Notifications
// @Produce json
// @Param limit query int false "Max rows, default 50"
// @Success 200 {object} utils.APIResponse
// @Router /notifications [get]
func (n *NotificationController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	resp, err := n.notificationService.GetForUser(c.Request.Context(), actorFrom(c).UserID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// UnreadCount godoc
// @Summary Count of notifications the caller has not dismissed
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/unread-count [get]
func (n *NotificationController) UnreadCount(c *gin.Context) {
	resp, err := n.notificationService.GetUnreadCount(c.Request.Context(), actorFrom(c).UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// MarkRead godoc
// @Summary Dismiss one notification for the caller
// @Tags Notifications
// @Produce json
// @Param notificationId path string true "Notification id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{notificationId}/read [patch]
func (n *NotificationController) MarkRead(c *gin.Context) {
	notificationID := c.Param("notificationId")

	if err := n.notificationService.MarkAsRead(c.Request.Context(), actorFrom(c).UserID, notificationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// MarkAllRead godoc
// @Summary Dismiss every visible notification for the caller
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/read-all [patch]
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	if err := n.notificationService.MarkAllAsRead(c.Request.Context(), actorFrom(c).UserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

// Create godoc
// @Summary Create a targeted or global notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} utils.APIResponse
// @Router /notifications [post]
func (n *NotificationController) Create(c *gin.Context) {
	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := n.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Notification created")
}

// CreateGlobal godoc
// @Summary Broadcast a notification to all users
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.CreateGlobalNotificationRequest true "Notification payload"
// @Success 201 {object} utils.APIResponse
// @Router /notifications/global [post]
func (n *NotificationController) CreateGlobal(c *gin.Context) {
	var req request_models.CreateGlobalNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := n.notificationService.CreateGlobal(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Notification broadcast")
}
