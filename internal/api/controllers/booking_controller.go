package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// Verify godoc
// @Summary Verify a service-slot checkout and confirm the booking
// @Tags Services
// @Accept json
// @Produce json
// @Param request body request_models.VerifyServiceBookingRequest true "Checkout result"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /services/verify [post]
func (b *BookingController) Verify(c *gin.Context) {
	var req request_models.VerifyServiceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.VerifyBooking(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking confirmed")
}

// ListAll godoc
// @Summary All service bookings
// @Tags Services
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/services [get]
func (b *BookingController) ListAll(c *gin.Context) {
	bookings, err := b.bookingService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"bookings": bookings, "count": len(bookings)}, "")
}
