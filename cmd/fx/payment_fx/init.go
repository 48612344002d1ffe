package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"offcampus/internal/api/controllers"
	"offcampus/internal/infra"
	"offcampus/internal/repositories"
	"offcampus/internal/services"
)

var Module = fx.Provide(
	provideRazorpayConfig, provideGateway,
	providePaymentRepo, provideGrantRepo,
	providePaymentService, providePaymentController)

func provideRazorpayConfig() services.RazorpayConfig {
	return services.RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

func provideGateway() infra.PaymentGateway {
	return infra.NewRazorpayGatewayFromEnv()
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepositoryInterface {
	return repositories.NewPaymentRepository(db)
}

func provideGrantRepo(db *gorm.DB) repositories.GrantRepositoryInterface {
	return repositories.NewGrantRepository(db)
}

func providePaymentService(
	cfg services.RazorpayConfig,
	gateway infra.PaymentGateway,
	payments repositories.PaymentRepositoryInterface,
	userDetails repositories.UserDetailsRepositoryInterface,
	grants repositories.GrantRepositoryInterface,
) services.PaymentServiceInterface {
	return services.NewPaymentService(cfg, gateway, payments, userDetails, grants)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
