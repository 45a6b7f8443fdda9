package routes

import (
	"srvices-backend/configs"
	"srvices-backend/controllers"
	"srvices-backend/middlewares"
	"srvices-backend/repository"
	"srvices-backend/services"
	"srvices-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	chatRepo := repository.NewChatRepository(db)
	platformRepo := repository.NewPlatformRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	bookingSvc := services.NewBookingService(db)
	pricingSvc := services.NewPricingService(pricingRepo)
	verifySvc := services.NewVerificationService(db)
	chatSvc := services.NewChatService(chatRepo, bookingRepo)
	exportSvc := services.NewExportService(userRepo, bookingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(serviceRepo)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	driverCtrl := controllers.NewDriverController(bookingSvc, verifySvc, txnRepo)
	chatCtrl := controllers.NewChatController(chatSvc)
	adminCtrl := controllers.NewAdminController(db, verifySvc, exportSvc)
	adminCatalogCtrl := controllers.NewAdminCatalogController(serviceRepo, pricingSvc)
	adminPlatformCtrl := controllers.NewAdminPlatformController(platformRepo, txnRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalog
	r.GET("/api/services", catalogCtrl.List)
	r.GET("/api/services/categories", catalogCtrl.Categories)
	r.GET("/api/services/:id", catalogCtrl.Detail)

	// Bookings (customer)
	u := r.Group("/", auth())
	{
		u.POST("/bookings", bookingCtrl.Create)
		u.GET("/bookings/:id", bookingCtrl.Detail)
		u.PATCH("/bookings/:id/cancel", bookingCtrl.Cancel)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/bookings", bookingCtrl.ListForMe)
	}

	// Chat (customer + driver + admin)
	chat := r.Group("/chat", auth())
	{
		chat.GET("/rooms", chatCtrl.MyRooms)
		chat.GET("/rooms/:id/messages", chatCtrl.Messages)
		chat.POST("/rooms/:id/messages", chatCtrl.Send)
	}

	// Partner Driver (driver/admin)
	partnerDriver := r.Group("/partner/driver", auth("driver", "admin"))
	{
		partnerDriver.GET("/feed", driverCtrl.Feed)
		partnerDriver.GET("/jobs", driverCtrl.Jobs)
		partnerDriver.PATCH("/jobs/:id/accept", driverCtrl.Accept)
		partnerDriver.PATCH("/jobs/:id/complete", driverCtrl.Complete)
		partnerDriver.PATCH("/jobs/:id/cancel", driverCtrl.Cancel)
		partnerDriver.GET("/documents", driverCtrl.MyDocuments)
		partnerDriver.POST("/documents", driverCtrl.SubmitDocument)
		partnerDriver.GET("/earnings", driverCtrl.Earnings)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PATCH("/users/:id/status", adminCtrl.UpdateUserStatus)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.GET("/users/export", adminCtrl.ExportUsers)

		admin.GET("/drivers", adminCtrl.ListDrivers)
		admin.GET("/drivers/:id/documents", adminCtrl.DriverDocuments)
		admin.PATCH("/drivers/:id/approve", adminCtrl.ApproveDriver)
		admin.PATCH("/drivers/:id/reject", adminCtrl.RejectDriver)
		admin.GET("/drivers/export", adminCtrl.ExportDrivers)
		admin.PATCH("/documents/:id", adminCtrl.ReviewDocument)

		admin.GET("/bookings", adminCtrl.ListBookings)

		admin.GET("/services", adminCatalogCtrl.ListServices)
		admin.POST("/services", adminCatalogCtrl.CreateService)
		admin.PATCH("/services/:id", adminCatalogCtrl.UpdateService)
		admin.DELETE("/services/:id", adminCatalogCtrl.DeleteService)
		admin.PUT("/services/reorder", adminCatalogCtrl.ReorderServices)

		admin.GET("/pricing-rules", adminCatalogCtrl.ListPricingRules)
		admin.POST("/pricing-rules", adminCatalogCtrl.CreatePricingRule)
		admin.PATCH("/pricing-rules/:id", adminCatalogCtrl.UpdatePricingRule)
		admin.DELETE("/pricing-rules/:id", adminCatalogCtrl.DeletePricingRule)

		admin.GET("/wallet", adminPlatformCtrl.Wallet)

		admin.GET("/settings", adminPlatformCtrl.ListSettings)
		admin.PUT("/settings", adminPlatformCtrl.UpsertSetting)

		admin.GET("/api-keys", adminPlatformCtrl.ListApiKeys)
		admin.POST("/api-keys", adminPlatformCtrl.CreateApiKey)
		admin.PATCH("/api-keys/:id/revoke", adminPlatformCtrl.RevokeApiKey)
		admin.DELETE("/api-keys/:id", adminPlatformCtrl.DeleteApiKey)

		admin.GET("/notification-templates", adminPlatformCtrl.ListTemplates)
		admin.PATCH("/notification-templates/:id", adminPlatformCtrl.UpdateTemplate)

		admin.GET("/language-strings", adminPlatformCtrl.ListLanguageStrings)
		admin.PUT("/language-strings", adminPlatformCtrl.UpsertLanguageString)
		admin.DELETE("/language-strings/:id", adminPlatformCtrl.DeleteLanguageString)
	}

	// Chat over WebSocket
	hub := ws.NewChatHub(chatSvc)
	go hub.Run()
	r.GET("/ws/chat/:roomId", auth(), hub.HandleWebSocket)
}
