package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Umar-Zansphere/shoeShop-sub001/email"
	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/routes"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
)

func main() {
	log.Println("✅ Starting SoleMate API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.GuestSession{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Category{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OtpChallenge{},
		&models.InventoryLog{},
		&models.PushSubscription{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Guest-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Guest-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, newSender())

	// Sweep expired guest sessions and stale OTP challenges hourly
	go startSessionSweeper(db, time.Hour)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// newSender wires the OTP dispatch channel: Resend when configured,
// log output otherwise so local development still shows the codes.
func newSender() services.Sender {
	client, err := email.NewClient()
	if err != nil {
		log.Printf("⚠️ Email disabled (%v); OTP codes will be logged", err)
		return email.LogSender{}
	}
	return client
}

// startSessionSweeper deletes expired guest sessions, their orphaned
// cart/wishlist rows, and dead OTP challenges on a fixed interval.
func startSessionSweeper(db *gorm.DB, interval time.Duration) {
	for {
		time.Sleep(interval)

		var expired []models.GuestSession
		if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
			log.Printf("❌ Session sweep failed: %v", err)
			continue
		}
		for _, session := range expired {
			err := db.Transaction(func(tx *gorm.DB) error {
				owner := models.GuestOwner(session.ID)
				if err := tx.Where("owner_type = ? AND owner_id = ?",
					owner.OwnerType, owner.OwnerID).Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
				if err := tx.Where("owner_type = ? AND owner_id = ?",
					owner.OwnerType, owner.OwnerID).Delete(&models.WishlistItem{}).Error; err != nil {
					return err
				}
				return tx.Delete(&session).Error
			})
			if err != nil {
				log.Printf("❌ Failed to sweep session %s: %v", session.ID, err)
			}
		}
		if len(expired) > 0 {
			log.Printf("🗑️ Swept %d expired guest sessions", len(expired))
		}

		if err := db.Where("expires_at < ? OR consumed_at IS NOT NULL",
			time.Now().Add(-24*time.Hour)).Delete(&models.OtpChallenge{}).Error; err != nil {
			log.Printf("❌ OTP sweep failed: %v", err)
		}
	}
}
