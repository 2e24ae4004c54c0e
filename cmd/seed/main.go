package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/campusexchange/backend/internal/config"
	"github.com/campusexchange/backend/internal/db"
	"github.com/campusexchange/backend/internal/model"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	FullName string
	Email    string
	Password string
	Role     string
}

type seedListing struct {
	SellerEmail   string
	Title         string
	Description   string
	Price         int64
	ItemCondition string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.User{}, &model.Listing{}, &model.Transaction{}, &model.Feedback{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	canSeed, err := shouldSeed(conn)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("users already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		byEmail := make(map[string]uint64)
		for _, su := range buildSeedUsers() {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", su.Email, err)
			}
			user := model.User{
				FullName:     su.FullName,
				Email:        su.Email,
				PasswordHash: string(hash),
				Role:         su.Role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("create user %s: %w", su.Email, err)
			}
			byEmail[su.Email] = user.ID
			log.Printf("seeded user %s (id=%d)", su.Email, user.ID)
		}

		for _, sl := range buildSeedListings() {
			sellerID, ok := byEmail[sl.SellerEmail]
			if !ok {
				return fmt.Errorf("no seed user for listing %q", sl.Title)
			}
			listing := model.Listing{
				SellerID:      sellerID,
				Title:         sl.Title,
				Description:   sl.Description,
				Price:         sl.Price,
				ItemCondition: sl.ItemCondition,
				Status:        model.ListingStatusAvailable,
			}
			if err := tx.Create(&listing).Error; err != nil {
				return fmt.Errorf("create listing %q: %w", sl.Title, err)
			}
			log.Printf("seeded listing %q (id=%d)", sl.Title, listing.ID)
		}
		return nil
	})
}

func shouldSeed(conn *gorm.DB) (bool, error) {
	if strings.EqualFold(os.Getenv("FORCE_SEED"), "true") {
		return true, nil
	}
	var count int64
	if err := conn.Model(&model.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count == 0, nil
}

func buildSeedUsers() []seedUser {
	return []seedUser{
		{FullName: "Asha Verma", Email: "asha@campus.test", Password: "asha-demo-pass", Role: "student"},
		{FullName: "Rohit Menon", Email: "rohit@campus.test", Password: "rohit-demo-pass", Role: "student"},
		{FullName: "Priya Nair", Email: "priya@campus.test", Password: "priya-demo-pass", Role: "staff"},
	}
}

func buildSeedListings() []seedListing {
	return []seedListing{
		{SellerEmail: "asha@campus.test", Title: "Casio FX-991 calculator", Description: "Barely used, all keys working.", Price: 600, ItemCondition: "Like New"},
		{SellerEmail: "asha@campus.test", Title: "Data structures textbook", Description: "CLRS 3rd edition, some highlighting.", Price: 450, ItemCondition: "Good"},
		{SellerEmail: "rohit@campus.test", Title: "Desk lamp", Description: "LED lamp with adjustable arm.", Price: 300, ItemCondition: "Good"},
		{SellerEmail: "priya@campus.test", Title: "Cycle (single gear)", Description: "Serviced last month, includes lock.", Price: 2500, ItemCondition: "Fair"},
	}
}
