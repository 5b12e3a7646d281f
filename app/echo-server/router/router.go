package router

import (
	"suplementosPro/internal/middleware"
	"suplementosPro/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler) {
	auth := api.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler) {
	cart := api.Group("/cart", middleware.AuthMiddleware())

	cart.POST("/add", handler.AddItem)
	cart.GET("", handler.ViewCart)
}

func SetupOrderRoutes(api *echo.Group, handler *rest.OrdersHandler) {
	api.POST("/checkout", handler.Checkout, middleware.AuthMiddleware())

	orders := api.Group("/orders", middleware.AuthMiddleware())
	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
}
