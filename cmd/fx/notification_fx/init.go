package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"offcampus/internal/api/controllers"
	"offcampus/internal/repositories"
	"offcampus/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService,
	provideNotificationController, provideCronController)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepositoryInterface {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(notifications repositories.NotificationRepositoryInterface) services.NotificationServiceInterface {
	return services.NewNotificationService(notifications)
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}

func provideCronController(notificationService services.NotificationServiceInterface) *controllers.CronController {
	return controllers.NewCronController(notificationService)
}
