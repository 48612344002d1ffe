package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"offcampus/internal/infra"
	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

type BookingServiceInterface interface {
	VerifyBooking(ctx context.Context, req request_models.VerifyServiceBookingRequest, actor Actor) (*response_models.BookingResponse, error)
	ListAll(ctx context.Context) ([]response_models.BookingResponse, error)
}

type bookingService struct {
	cfg      RazorpayConfig
	gateway  infra.PaymentGateway
	bookings repositories.BookingRepositoryInterface
	mail     MailServiceInterface
}

func NewBookingService(
	cfg RazorpayConfig,
	gateway infra.PaymentGateway,
	bookings repositories.BookingRepositoryInterface,
	mail MailServiceInterface,
) BookingServiceInterface {
	return &bookingService{
		cfg:      cfg,
		gateway:  gateway,
		bookings: bookings,
		mail:     mail,
	}
}

// VerifyBooking confirms a paid service slot. Bookings go through the full
// check: local signature first, then a gateway fetch of the payment, and only
// then the upsert. Confirmation mails are fire and forget.
func (b *bookingService) VerifyBooking(ctx context.Context, req request_models.VerifyServiceBookingRequest, actor Actor) (*response_models.BookingResponse, error) {
	if !actor.IsAdmin() && actor.UserID != req.UserID {
		return nil, fmt.Errorf("%w: cannot verify booking for another user", utils.ErrForbidden)
	}
	if b.cfg.KeySecret == "" {
		return nil, fmt.Errorf("%w: razorpay keys missing", utils.ErrMisconfigured)
	}

	if !signatureMatches(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, b.cfg.KeySecret) {
		return nil, utils.ErrInvalidSignature
	}

	gatewayPayment, err := b.gateway.FetchPayment(ctx, req.RazorpayPaymentID)
	if err != nil {
		return nil, err
	}
	if gatewayPayment.Status != "" && !acceptableStatuses[gatewayPayment.Status] {
		return nil, fmt.Errorf("%w: %s", utils.ErrPaymentNotAcceptable, gatewayPayment.Status)
	}

	rawResponse, err := json.Marshal(gatewayPayment.Raw)
	if err != nil {
		rawResponse = nil
	}

	booking := &db_models.ServiceBooking{
		UserID:            req.UserID,
		Name:              req.Name,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		State:             req.State,
		Language:          req.Language,
		ResumeURL:         req.ResumeURL,
		ServiceNeeded:     req.ServiceNeeded,
		SlotDate:          req.SlotDate,
		SlotTime:          req.SlotTime,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpaySignature: req.RazorpaySignature,
		PaymentVerified:   true,
		RawResponse:       rawResponse,
	}
	saved, err := b.bookings.UpsertByPaymentID(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert booking: %v", utils.ErrDatabaseError, err)
	}

	go func(booking db_models.ServiceBooking) {
		if err := b.mail.SendBookingConfirmation(&booking); err != nil {
			log.Printf("booking confirmation mail for %s: %v", booking.ID, err)
		}
		if err := b.mail.SendBookingAlert(&booking); err != nil {
			log.Printf("booking alert mail for %s: %v", booking.ID, err)
		}
	}(*saved)

	resp := toBookingResponse(saved)
	return &resp, nil
}

func (b *bookingService) ListAll(ctx context.Context) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out, nil
}

func toBookingResponse(booking *db_models.ServiceBooking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ServiceID:       booking.ID,
		UserID:          booking.UserID,
		Name:            booking.Name,
		Email:           booking.Email,
		PhoneNumber:     booking.PhoneNumber,
		State:           booking.State,
		Language:        booking.Language,
		ResumeURL:       booking.ResumeURL,
		ServiceNeeded:   booking.ServiceNeeded,
		SlotDate:        booking.SlotDate,
		SlotTime:        booking.SlotTime,
		PaymentVerified: booking.PaymentVerified,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
