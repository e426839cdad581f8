package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, orders *handler.OrderHandler, products *handler.ProductHandler, categories *handler.CategoryHandler, users *handler.UserHandler) {
	api := r.Group("/api")
	{
		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders", orders.ListOrders)
		api.GET("/orders/:id", orders.GetOrder)
		api.PUT("/orders/:id", orders.UpdateOrderStatus)
		api.DELETE("/orders/:id", orders.DeleteOrder)

		api.POST("/products", products.CreateProduct)
		api.GET("/products", products.ListProducts)
		api.GET("/products/get/count", products.CountProducts)
		api.GET("/products/get/featured/:count", products.FeaturedProducts)
		api.GET("/products/:id", products.GetProduct)
		api.PUT("/products/:id", products.UpdateProduct)
		api.DELETE("/products/:id", products.DeleteProduct)

		api.POST("/categories", categories.CreateCategory)
		api.GET("/categories", categories.ListCategories)
		api.GET("/categories/:id", categories.GetCategory)
		api.PUT("/categories/:id", categories.UpdateCategory)
		api.DELETE("/categories/:id", categories.DeleteCategory)

		api.POST("/users", users.RegisterUser)
		api.GET("/users", users.ListUsers)
		api.GET("/users/:id", users.GetUser)
	}
}
