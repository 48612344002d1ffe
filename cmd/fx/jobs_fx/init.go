package jobs_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"offcampus/internal/api/controllers"
	"offcampus/internal/repositories"
	"offcampus/internal/services"
)

var Module = fx.Provide(
	provideJobRepo, provideJobService, provideJobController)

func provideJobRepo(db *gorm.DB) repositories.JobRepositoryInterface {
	return repositories.NewJobRepository(db)
}

func provideJobService(
	jobs repositories.JobRepositoryInterface,
	notifications services.NotificationServiceInterface,
) services.JobServiceInterface {
	return services.NewJobService(jobs, notifications)
}

func provideJobController(jobService services.JobServiceInterface) *controllers.JobController {
	return controllers.NewJobController(jobService)
}
