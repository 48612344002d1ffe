package storage_fx

import (
	"go.uber.org/fx"

	"offcampus/internal/api/controllers"
	"offcampus/internal/infra"
	"offcampus/internal/services"
)

var Module = fx.Provide(
	provideObjectStorage, provideUploadService, provideUploadController)

func provideObjectStorage() infra.ObjectStorage {
	return infra.NewR2StorageFromEnv()
}

func provideUploadService(storage infra.ObjectStorage) services.UploadServiceInterface {
	return services.NewUploadService(storage)
}

func provideUploadController(uploadService services.UploadServiceInterface) *controllers.UploadController {
	return controllers.NewUploadController(uploadService)
}
