package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"offcampus/internal/api/controllers"
	"offcampus/internal/infra"
	"offcampus/internal/repositories"
	"offcampus/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepositoryInterface {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	cfg services.RazorpayConfig,
	gateway infra.PaymentGateway,
	bookings repositories.BookingRepositoryInterface,
	mail services.MailServiceInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(cfg, gateway, bookings, mail)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
