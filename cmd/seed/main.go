package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SOf1AN3/myks-sports-bolt/catalog"
	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
	"github.com/SOf1AN3/myks-sports-bolt/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the demonstration catalogue and creates the admin account.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MYKS SPORTS - Catalogue & Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	seedProducts()
	seedAdmin()

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run main.go")
	fmt.Println("2. Browse the catalogue at GET /api/products")
	fmt.Println("3. Login at POST /api/admin/login to manage products")
	fmt.Println()
}

func seedProducts() {
	products := catalog.SeedProducts()

	// Upsert by id so re-running the seeder refreshes the demonstration set
	// without duplicating it.
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d products", len(products))
}

func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	if name == "" {
		name = "MYKS Admin"
	}

	authService := services.GetAdminAuthService()
	if !authService.ValidatePassword(password) {
		log.Fatal("❌ ADMIN_PASSWORD must be at least 8 characters")
	}

	var existing models.Admin
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("✓ Admin '%s' already exists, skipping", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Admin account created: %s", email)
}
