package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mp-codespace/masterprima-site-sub001/internal/model"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/database"
)

// Seeds the initial admin account and the site settings the frontend
// expects to exist. Safe to re-run: existing rows are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding database...")

	seedInitialAdmin(db)
	seedDefaultSettings(db)

	color.Green("Seeding completed.")
}

func seedInitialAdmin(db *gorm.DB) {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	email := os.Getenv("SEED_ADMIN_EMAIL")

	if username == "" || password == "" {
		color.Yellow("Skip: SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD not set, no admin seeded")
		return
	}

	var count int64
	if err := db.Model(&model.Admin{}).Where("username = ?", username).Count(&count).Error; err != nil {
		color.Red("Error: admin lookup failed: %v", err)
		return
	}
	if count > 0 {
		color.Yellow("Skip: admin %q already exists", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: failed to hash password: %v", err)
		return
	}

	hashStr := string(hash)
	admin := model.Admin{
		Username:     username,
		PasswordHash: &hashStr,
		IsAdmin:      true,
		AuthProvider: "email",
	}
	if email != "" {
		admin.Email = &email
	}

	if err := db.Create(&admin).Error; err != nil {
		color.Red("Error: failed to create admin: %v", err)
		return
	}
	color.Green("Created admin account %q", username)
}

func seedDefaultSettings(db *gorm.DB) {
	defaults := []model.SiteSetting{
		{
			Key: "contact",
			Value: datatypes.JSONMap{
				"phone":    "+62 811-0000-000",
				"whatsapp": "+62 811-0000-000",
				"email":    "info@masterprima.co.id",
				"address":  "Surabaya, Jawa Timur",
			},
		},
		{
			Key: "social",
			Value: datatypes.JSONMap{
				"instagram": "https://instagram.com/masterprima",
				"facebook":  "https://facebook.com/masterprima",
				"youtube":   "",
			},
		},
		{
			Key: "hero",
			Value: datatypes.JSONMap{
				"headline":    "Bimbingan Belajar MasterPrima",
				"subheadline": "Persiapan UTBK, CPNS, dan sekolah kedinasan",
			},
		},
	}

	for _, setting := range defaults {
		var count int64
		if err := db.Model(&model.SiteSetting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
			color.Red("Error: setting lookup failed for %q: %v", setting.Key, err)
			continue
		}
		if count > 0 {
			color.Yellow("Skip: setting %q already exists", setting.Key)
			continue
		}
		if err := db.Create(&setting).Error; err != nil {
			color.Red("Error: failed to seed setting %q: %v", setting.Key, err)
			continue
		}
		color.Green("Seeded setting %q", setting.Key)
	}
}
