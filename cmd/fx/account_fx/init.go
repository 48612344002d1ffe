package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"offcampus/internal/api/controllers"
	"offcampus/internal/repositories"
	"offcampus/internal/services"
	mem "offcampus/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideUserDetailsRepo, provideResetStore,
	provideAccountService, provideUserService,
	provideAuthController, provideUserController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideUserDetailsRepo(db *gorm.DB) repositories.UserDetailsRepositoryInterface {
	return repositories.NewUserDetailsRepository(db)
}

func provideResetStore() mem.ResetStore {
	return mem.NewResetTokens()
}

func provideAccountService(
	accounts repositories.AccountRepositoryInterface,
	userDetails repositories.UserDetailsRepositoryInterface,
	resets mem.ResetStore,
	mail services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accounts, userDetails, resets, mail)
}

func provideUserService(
	userDetails repositories.UserDetailsRepositoryInterface,
	accounts repositories.AccountRepositoryInterface,
) services.UserServiceInterface {
	return services.NewUserService(userDetails, accounts)
}

func provideAuthController(accountService services.AccountServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(accountService)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
