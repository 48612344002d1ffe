package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"offcampus/cmd/fx/account_fx"
	"offcampus/cmd/fx/booking_fx"
	"offcampus/cmd/fx/catalog_fx"
	"offcampus/cmd/fx/db_fx"
	"offcampus/cmd/fx/jobs_fx"
	"offcampus/cmd/fx/mail_fx"
	"offcampus/cmd/fx/notification_fx"
	"offcampus/cmd/fx/payment_fx"
	"offcampus/cmd/fx/storage_fx"
	"offcampus/internal/api/controllers"
	"offcampus/internal/services"
	"offcampus/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	services.SetPlanResourceBundles(
		splitEnvList("BASIC_FREE_RESOURCE_IDS"),
		splitEnvList("STANDARD_EXTRA_RESOURCE_IDS"),
	)

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		payment_fx.Module,
		catalog_fx.Module,
		notification_fx.Module,
		jobs_fx.Module,
		mail_fx.Module,
		booking_fx.Module,
		storage_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func splitEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	jobController *controllers.JobController,
	resourceController *controllers.ResourceController,
	kitController *controllers.KitController,
	bookingController *controllers.BookingController,
	uploadController *controllers.UploadController,
	cronController *controllers.CronController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController, userController, paymentController, notificationController,
		jobController, resourceController, kitController,
		bookingController, uploadController, cronController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	jobController *controllers.JobController,
	resourceController *controllers.ResourceController,
	kitController *controllers.KitController,
	bookingController *controllers.BookingController,
	uploadController *controllers.UploadController,
	cronController *controllers.CronController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/forgot-password", authController.ForgotPassword)
	authGroup.POST("/refresh-otp", authController.RefreshOTP)
	authGroup.POST("/verify-otp", authController.VerifyOTP)
	authGroup.POST("/reset-password", authController.ResetPassword)

	users := r.Group("/users", middleware.JWTAuthMiddleware())
	users.GET("/me", userController.GetMe)
	users.PUT("/me", userController.UpdateMe)

	payments := r.Group("/payments")
	payments.GET("/config", paymentController.GetConfig)
	payments.POST("/verify", middleware.JWTAuthMiddleware(), paymentController.VerifyPayment)
	payments.POST("/order", middleware.JWTAuthMiddleware(), paymentController.CreateOrder)
	payments.GET("/subscriptions",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(middleware.RoleAdmin),
		paymentController.GetAllSubscriptions)
	payments.GET("/subscriptions/:userId",
		middleware.JWTAuthMiddleware(),
		middleware.AdminOrSelfMiddleware("userId"),
		paymentController.GetUserSubscriptions)

	notifications := r.Group("/notifications", middleware.JWTAuthMiddleware())
	notifications.GET("", notificationController.List)
	notifications.GET("/unread-count", notificationController.UnreadCount)
	notifications.PATCH("/read-all", notificationController.MarkAllRead)
	notifications.PATCH("/:notificationId/read", notificationController.MarkRead)
	notifications.POST("", middleware.RoleMiddleware(middleware.RoleAdmin), notificationController.Create)
	notifications.POST("/global", middleware.RoleMiddleware(middleware.RoleAdmin), notificationController.CreateGlobal)

	r.GET("/jobs", jobController.ListPublished)
	r.GET("/jobs/:jobId", jobController.GetByID)

	r.GET("/resources", resourceController.ListPublished)
	resources := r.Group("/resources", middleware.JWTAuthMiddleware())
	resources.POST("/verify-purchase", resourceController.VerifyPurchase)
	resources.GET("/:resourceId/access", resourceController.GetAccess)

	r.GET("/kits", kitController.ListPublished)
	kits := r.Group("/kits", middleware.JWTAuthMiddleware())
	kits.POST("/verify-purchase", kitController.VerifyPurchase)
	kits.GET("/:kitId/access", kitController.GetAccess)

	r.POST("/services/verify", middleware.JWTAuthMiddleware(), bookingController.Verify)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware())

	adminJobs := admin.Group("/jobs", middleware.RoleMiddleware(middleware.RoleAdmin, middleware.RoleIntern))
	adminJobs.GET("", jobController.ListAll)
	adminJobs.POST("", jobController.Create)
	adminJobs.PUT("/:jobId", jobController.Update)
	adminJobs.DELETE("/:jobId", jobController.Delete)

	adminOnly := admin.Group("", middleware.RoleMiddleware(middleware.RoleAdmin))
	adminOnly.GET("/resources", resourceController.ListAll)
	adminOnly.POST("/resources", resourceController.Create)
	adminOnly.PUT("/resources/:resourceId", resourceController.Update)
	adminOnly.DELETE("/resources/:resourceId", resourceController.Delete)
	adminOnly.GET("/kits", kitController.ListAll)
	adminOnly.POST("/kits", kitController.Create)
	adminOnly.PUT("/kits/:kitId", kitController.Update)
	adminOnly.DELETE("/kits/:kitId", kitController.Delete)
	adminOnly.GET("/services", bookingController.ListAll)
	adminOnly.GET("/users", userController.ListAll)

	r.POST("/uploads",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(middleware.RoleAdmin),
		uploadController.Upload)
	r.DELETE("/uploads",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(middleware.RoleAdmin),
		uploadController.Delete)

	r.POST("/cron/cleanup-notifications", cronController.CleanupNotifications)
}
