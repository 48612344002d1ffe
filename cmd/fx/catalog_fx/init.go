package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"offcampus/internal/api/controllers"
	"offcampus/internal/repositories"
	"offcampus/internal/services"
)

// Module wires the purchasable catalog: downloadable resources and interview
// preparation kits, plus the purchase-verification service that grants them.
var Module = fx.Provide(
	provideResourceRepo, provideKitRepo,
	provideResourceService, provideKitService, providePurchaseService,
	provideResourceController, provideKitController)

func provideResourceRepo(db *gorm.DB) repositories.ResourceRepositoryInterface {
	return repositories.NewResourceRepository(db)
}

func provideKitRepo(db *gorm.DB) repositories.KitRepositoryInterface {
	return repositories.NewKitRepository(db)
}

func provideResourceService(resources repositories.ResourceRepositoryInterface) services.ResourceServiceInterface {
	return services.NewResourceService(resources)
}

func provideKitService(kits repositories.KitRepositoryInterface) services.KitServiceInterface {
	return services.NewKitService(kits)
}

func providePurchaseService(
	cfg services.RazorpayConfig,
	resources repositories.ResourceRepositoryInterface,
	kits repositories.KitRepositoryInterface,
	grants repositories.GrantRepositoryInterface,
	userDetails repositories.UserDetailsRepositoryInterface,
) services.PurchaseServiceInterface {
	return services.NewPurchaseService(cfg, resources, kits, grants, userDetails)
}

func provideResourceController(
	resourceService services.ResourceServiceInterface,
	purchaseService services.PurchaseServiceInterface,
) *controllers.ResourceController {
	return controllers.NewResourceController(resourceService, purchaseService)
}

func provideKitController(
	kitService services.KitServiceInterface,
	purchaseService services.PurchaseServiceInterface,
) *controllers.KitController {
	return controllers.NewKitController(kitService, purchaseService)
}
