package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LearnPlayAI/HeartCart-sub006/controllers"
	"github.com/LearnPlayAI/HeartCart-sub006/middleware"
	"github.com/LearnPlayAI/HeartCart-sub006/websocket"
)

func SetupRoutes(r *gin.Engine) {
	admin := []gin.HandlerFunc{middleware.Auth(), middleware.AdminOnly()}

	// Storefront
	r.GET("/api/categories", controllers.GetCategoriesHome)
	r.GET("/api/categories/tree", controllers.GetCategoryTree)
	r.GET("/api/products", controllers.GetProductsHome)
	r.GET("/api/products/:slug", controllers.GetProductHome)
	r.GET("/api/promotions", controllers.GetPromotionsHome)
	r.POST("/api/orders", controllers.CreateOrder)

	// SEO
	r.GET("/api/seo/products/:slug/jsonld", controllers.GetProductJSONLD)
	r.GET("/api/seo/sitemap", controllers.GetSitemap)

	// Auth
	r.POST("/api/auth/register", controllers.Register)
	r.POST("/api/auth/login", controllers.Login)

	// Status-change surface. These keep their public paths because the
	// admin UI and integrations address them directly; the admin gate
	// rides on each route.
	r.PUT("/api/categories/:id/visibility", append(admin, controllers.UpdateCategoryVisibility)...)
	r.POST("/api/products/bulk-update-status", append(admin, controllers.BulkUpdateProductStatus)...)
	r.PUT("/api/suppliers/:id", append(admin, controllers.UpdateSupplier)...)
	r.PUT("/api/catalogs/:id", append(admin, controllers.UpdateCatalog)...)

	// Back office. AdminOnly lives on the group so handlers never
	// repeat the role check.
	api := r.Group("/api/admin", middleware.Auth(), middleware.AdminOnly())
	{
		api.GET("/categories", controllers.GetCategories)
		api.POST("/categories", controllers.CreateCategory)
		api.PUT("/categories/:id", controllers.UpdateCategory)
		api.DELETE("/categories/:id", controllers.DeleteCategory)

		api.GET("/products", controllers.GetProducts)
		api.POST("/products", controllers.CreateProduct)
		api.PUT("/products/:id", controllers.UpdateProduct)
		api.DELETE("/products/:id", controllers.DeleteProduct)

		api.GET("/suppliers", controllers.GetSuppliers)
		api.GET("/suppliers/:id", controllers.GetSupplierDetail)
		api.POST("/suppliers", controllers.CreateSupplier)

		api.GET("/catalogs", controllers.GetCatalogs)
		api.GET("/catalogs/:id", controllers.GetCatalogDetail)
		api.POST("/catalogs", controllers.CreateCatalog)

		api.GET("/promotions", controllers.GetPromotions)
		api.POST("/promotions", controllers.CreatePromotion)
		api.PUT("/promotions/:id", controllers.UpdatePromotion)
		api.DELETE("/promotions/:id", controllers.DeletePromotion)

		api.GET("/orders", controllers.GetOrders)
		api.GET("/orders/:id", controllers.GetOrderDetail)
		api.PUT("/orders/:id/status", controllers.UpdateOrderStatus)

		api.GET("/events", websocket.HandleWebSocket)
	}
}
