package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aquilaclo/storefront/docs"
	"github.com/aquilaclo/storefront/internal/auth"
	"github.com/aquilaclo/storefront/internal/cart"
	"github.com/aquilaclo/storefront/internal/catalog"
	"github.com/aquilaclo/storefront/internal/config"
	"github.com/aquilaclo/storefront/internal/httpx"
	"github.com/aquilaclo/storefront/internal/order"
)

// @title Aquila storefront API
// @version 1.0
// @description Backend for the Aquila Clo storefront: catalog, cart, checkout, orders, admin.
// @BasePath /
func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[storefront] pgx pool: %v", err)
	}
	defer pool.Close()

	users := auth.NewPGRepo(pool)
	products := catalog.NewPGRepo(pool)
	carts := cart.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)

	tokens := auth.NewTokens(cfg.JWTSecret)
	hub := auth.NewHub()

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(cfg.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public catalog reads
	r.GET("/products", listProductsHandler(products))
	r.GET("/products/:id", getProductHandler(products))

	// Auth
	r.POST("/auth/signup", signUpHandler(users, tokens, hub))
	r.POST("/auth/login", signInHandler(users, tokens, hub))

	authed := r.Group("/", auth.RequireUser(tokens))
	{
		authed.GET("/auth/session", sessionHandler())
		authed.GET("/auth/session/stream", sessionStreamHandler(hub))
		authed.POST("/auth/logout", signOutHandler(hub))

		authed.GET("/cart", getCartHandler(carts))
		authed.GET("/cart/count", cartCountHandler(carts))
		authed.POST("/cart", addToCartHandler(carts))
		authed.PUT("/cart/:id", updateCartItemHandler(carts))
		authed.DELETE("/cart/:id", removeCartItemHandler(carts))

		authed.POST("/checkout", checkoutHandler(carts, orders))
		authed.GET("/account/orders", listMyOrdersHandler(orders))
	}

	admin := r.Group("/admin", auth.RequireUser(tokens), auth.RequireAdmin(users))
	{
		admin.GET("/summary", adminSummaryHandler(orders, products))
		admin.GET("/orders", adminOrdersHandler(orders))
		admin.GET("/products", adminProductsHandler(products))
		admin.PUT("/sizes/:id/stock", updateStockHandler(products))
	}

	log.Printf("[storefront] listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
