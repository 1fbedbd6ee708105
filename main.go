// @title MYKS Sports API
// @version 1.0
// @description MYKS Sports storefront API documentation
// @host localhost:5000
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	admin_order_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/admin/order_controller"
	admin_product_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/admin/product_controller"
	_ "github.com/SOf1AN3/myks-sports-bolt/docs"
	"github.com/SOf1AN3/myks-sports-bolt/routes"
	"github.com/SOf1AN3/myks-sports-bolt/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection
	config.ConnectRedis()

	// Initialize Cloudinary service (optional; image uploads 500 until set)
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" {
		if err := admin_product_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ CLOUDINARY_CLOUD_NAME not set, product image uploads disabled")
	}

	// Initialize Resend for invoice emails (optional; sends 500 until set)
	if resendKey := os.Getenv("RESEND_API_KEY"); resendKey != "" {
		admin_order_controller.InitResend(resendKey, os.Getenv("RESEND_FROM_EMAIL"))
		log.Println("✅ Resend initialized")
	} else {
		log.Println("⚠️ RESEND_API_KEY not set, invoice emails disabled")
	}

	// Initialize JWT service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")
	routes.SetupStorefrontRoutes(api)
	routes.SetupAdminRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("🚀 MYKS Sports API Server running on http://localhost:%s\n", port)
		fmt.Printf("📊 Health check: http://localhost:%s/api/health\n", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
	log.Println("✅ Server stopped")
}
