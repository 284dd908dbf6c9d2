package routes

import (
	"farmtohome_back_end/internal/handlers/product"
	"farmtohome_back_end/internal/handlers/seller"
	"farmtohome_back_end/internal/handlers/user"
	"farmtohome_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Comptes & adresses
	auth := api.Group("/auth")
	{
		auth.POST("/signup", user.Signup)
		auth.POST("/signin", user.Signin)

		me := auth.Group("", middleware.AuthRequired())
		{
			me.GET("/me", user.Me)
			me.PUT("/me", user.UpdateMe)
			me.POST("/addresses", user.AddAddress)
			me.PUT("/addresses/:idx", user.UpdateAddress)
			me.DELETE("/addresses/:idx", user.DeleteAddress)
		}
	}

	// Catalogue : lecture publique, mutations vendeur
	products := api.Group("/products")
	{
		products.GET("", product.GetAllProducts)
		products.GET("/search", product.SearchProducts)
		products.GET("/:id", product.GetProductByID)

		products.POST("", middleware.SellerRequired(), product.CreateProduct)
		products.PUT("/:id", middleware.SellerRequired(), product.UpdateProduct)
		products.DELETE("/:id", middleware.SellerRequired(), product.DeleteProduct)
	}

	// Panier (acheteur connecté)
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", user.GetCart)
		cart.POST("/add", user.AddToCart)
		cart.POST("/remove", user.RemoveFromCart)
		cart.DELETE("/clear", user.ClearCart)
	}

	// Commandes : création/lecture acheteur, gestion vendeur
	orders := api.Group("/orders")
	{
		orders.POST("", middleware.AuthRequired(), user.CreateOrder)
		orders.GET("/my", middleware.AuthRequired(), user.GetMyOrders)

		orders.GET("", middleware.SellerRequired(), seller.GetAllOrders)
		orders.PUT("/:id/status", middleware.SellerRequired(), seller.UpdateOrderStatus)
	}
}
