package router

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/restotrack/restaurant-app/config"
	"github.com/restotrack/restaurant-app/controllers"
	"github.com/restotrack/restaurant-app/middlewares"
	"github.com/restotrack/restaurant-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	ledger := services.NewInventoryLedger(db)
	orderSvc := services.NewOrderService(db, ledger, config.TaxRate(), config.ServiceRate())
	reservationSvc := services.NewReservationService(db)

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	menuCtrl := controllers.NewMenuController(db)
	inventoryCtrl := controllers.NewInventoryController(db, ledger)
	orderCtrl := controllers.NewOrderController(db, orderSvc)
	reservationCtrl := controllers.NewReservationController(db, reservationSvc)
	notificationCtrl := controllers.NewNotificationController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Browsing the menu and checking tables needs no login.
	r.GET("/menus", menuCtrl.GetAllMenuItems)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuItemByID)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/by-status", tableCtrl.FindTablesByStatus)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/users", userCtrl.GetAllUsers)

	// TABLES (staff/admin)
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTableStatus)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// MENUS (staff/admin)
	auth.GET("/menus", menuCtrl.GetAllMenuItems)
	auth.POST("/menus", menuCtrl.CreateMenuItem)
	auth.GET("/menus/:menu_id", menuCtrl.GetMenuItemByID)
	auth.PATCH("/menus/:menu_id", menuCtrl.UpdateMenuItem)
	auth.DELETE("/menus/:menu_id", menuCtrl.DeleteMenuItem)

	// INVENTORY (staff/admin)
	auth.GET("/inventory", inventoryCtrl.GetAllInventory)
	auth.GET("/inventory/low-stock", inventoryCtrl.GetLowStock)
	auth.POST("/inventory", inventoryCtrl.CreateInventory)
	auth.GET("/inventory/:inventory_id", inventoryCtrl.GetInventoryByID)
	auth.PATCH("/inventory/:inventory_id", inventoryCtrl.UpdateInventory)
	auth.POST("/inventory/:inventory_id/restock", inventoryCtrl.Restock)
	auth.DELETE("/inventory/:inventory_id", inventoryCtrl.DeleteInventory)

	// ORDERS
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.POST("/orders", orderCtrl.PlaceOrder)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)
	auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// RESERVATIONS (staff/admin)
	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.POST("/reservations", reservationCtrl.CreateReservation)
	auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservationStatus)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// NOTIFICATIONS (staff/admin)
	auth.GET("/notifications", notificationCtrl.GetAllNotifications)
	auth.GET("/notifications/:notif_id", notificationCtrl.GetNotificationByID)
	auth.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)

	// Admin dashboard
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// WebSocket endpoint for live dashboards
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", middlewares.RoleCheck(), controllers.EventsHandler)
	}

	return r
}
