package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dendisetiawann/kejora-frontend/config"
	"github.com/dendisetiawann/kejora-frontend/controllers"
	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/repositories"
	"github.com/dendisetiawann/kejora-frontend/services"
)

func SetupRoutes(router *gin.Engine) {
	kv := repositories.NewRedisKV()
	tokenRepo := repositories.NewTokenRepository(kv)
	draftRepo := repositories.NewDraftRepository(kv)
	successRepo := repositories.NewOrderSuccessRepository(kv)

	// The admin client reads the token stored for the session carried in the
	// request context, so one client serves every admin session.
	api := libs.NewKejoraAPI(config.AppConfig.APIBaseURL, func(ctx context.Context) string {
		sessionID := middleware.SessionFromContext(ctx)
		if sessionID == "" {
			return ""
		}
		token, err := tokenRepo.Get(ctx, sessionID)
		if err != nil {
			return ""
		}
		return token
	})

	receipts := libs.NewPDFReceiptGenerator(config.AppConfig.ReceiptDir, config.AppConfig.QRISMerchantID)

	notificationSvc := services.NewNotificationService(api, config.AppConfig.OrderPollInterval, config.AppConfig.BannerDismissDelay)
	authSvc := services.NewAuthService(api, tokenRepo, notificationSvc)
	checkoutSvc := services.NewCheckoutService(draftRepo, successRepo, api, api)
	successSvc := services.NewOrderSuccessService(successRepo, api, receipts, config.AppConfig.SuccessPollInterval, config.AppConfig.QRISMerchantID)

	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(api)
	cartCtrl := controllers.NewCartController(checkoutSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	successCtrl := controllers.NewOrderSuccessController(successSvc)
	adminCategoryCtrl := controllers.NewAdminCategoryController(api, authSvc)
	adminMenuCtrl := controllers.NewAdminMenuController(api, authSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(api, authSvc)
	notificationCtrl := controllers.NewNotificationController(notificationSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.Use(middleware.SessionMiddleware())

	order := router.Group("/order")
	{
		order.GET("/menus", menuCtrl.GetMenus)
		order.GET("/menus/:id", menuCtrl.GetMenuByID)

		order.GET("/cart", cartCtrl.GetCart)
		order.POST("/cart", cartCtrl.StartCart)
		order.DELETE("/cart", cartCtrl.ResetCart)
		order.POST("/cart/items", cartCtrl.AddItem)
		order.PUT("/cart/items/:menuId", cartCtrl.UpdateItem)

		order.GET("/checkout", checkoutCtrl.GetCheckout)
		order.PUT("/checkout/options", checkoutCtrl.SetOptions)
		order.POST("/checkout", checkoutCtrl.Submit)

		order.GET("/success", successCtrl.GetSuccess)
		order.POST("/success/back", successCtrl.BackToMenu)
	}

	router.POST("/admin/login", authCtrl.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminMiddleware(authSvc, notificationSvc))
	{
		admin.POST("/logout", authCtrl.Logout)
		admin.GET("/me", authCtrl.Me)
		admin.GET("/dashboard", adminOrderCtrl.GetDashboard)

		admin.GET("/categories", adminCategoryCtrl.GetCategories)
		admin.POST("/categories", adminCategoryCtrl.CreateCategory)
		admin.PUT("/categories/:id", adminCategoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCategoryCtrl.DeleteCategory)

		admin.GET("/menus", adminMenuCtrl.GetMenus)
		admin.POST("/menus", adminMenuCtrl.CreateMenu)
		admin.PUT("/menus/:id", adminMenuCtrl.UpdateMenu)
		admin.DELETE("/menus/:id", adminMenuCtrl.DeleteMenu)

		admin.GET("/orders", adminOrderCtrl.GetOrders)
		admin.GET("/orders/:id", adminOrderCtrl.GetOrderByID)
		admin.PUT("/orders/:id/status", adminOrderCtrl.UpdateOrderStatus)
		admin.PUT("/orders/:id/payment-status", adminOrderCtrl.UpdatePaymentStatus)

		admin.GET("/notifications", notificationCtrl.GetState)
		admin.POST("/notifications/dismiss", notificationCtrl.Dismiss)
		admin.POST("/notifications/clear", notificationCtrl.ClearUnread)
		admin.POST("/notifications/refresh", notificationCtrl.Refresh)
		admin.POST("/notifications/leave", notificationCtrl.Leave)
	}

	router.Static("/receipts", config.AppConfig.ReceiptDir)
}
