package main

import (
	"log"
	"os"

	"slm-marketing-be/internal/model"
	"slm-marketing-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdminUser(db)
	seedHeroes(db)
	seedFeatures(db)
	seedSectionSettings(db)

	color.Green("✅ Seeding completed!")
}

func seedAdminUser(db *gorm.DB) {
	color.Cyan("Seeding admin user...")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("Warn: SEED_ADMIN_PASSWORD not set, using default password")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}

	admin := model.User{
		Email:        email,
		FullName:     "Site Administrator",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create admin user: %v", err)
	}
	color.Green("Created admin user: %s", email)
}

func seedHeroes(db *gorm.DB) {
	color.Cyan("Seeding heroes...")

	var count int64
	db.Model(&model.Hero{}).Count(&count)
	if count > 0 {
		color.Yellow("Heroes table already has %d rows, skipping...", count)
		return
	}

	primaryLabel := "Get Started"
	primaryHref := "/signup"
	secondaryLabel := "Learn More"
	secondaryHref := "/docs"

	heroes := []model.Hero{
		{
			Title:           "Make smarter decisions, faster",
			Subtitle:        "A workspace that turns scattered notes into structured thinking.",
			Badge:           "New",
			SocialProof:     "Trusted by 2,000+ teams",
			DisplayOrder:    1,
			PrimaryCtaLabel: &primaryLabel,
			PrimaryCtaHref:  &primaryHref,
			Status:          "PUBLISHED",
		},
		{
			Title:             "Your knowledge, organized",
			Subtitle:          "Capture, connect and retrieve everything your team knows.",
			Badge:             "Beta",
			SocialProof:       "Rated 4.8/5 by early adopters",
			DisplayOrder:      2,
			SecondaryCtaLabel: &secondaryLabel,
			SecondaryCtaHref:  &secondaryHref,
			Status:            "DRAFT",
		},
	}

	for _, h := range heroes {
		if err := db.Create(&h).Error; err != nil {
			color.Red("Error creating hero '%s': %v", h.Title, err)
		} else {
			color.Green("Created hero: %s", h.Title)
		}
	}
}

func seedFeatures(db *gorm.DB) {
	color.Cyan("Seeding features...")

	var count int64
	db.Model(&model.Feature{}).Count(&count)
	if count > 0 {
		color.Yellow("Features table already has %d rows, skipping...", count)
		return
	}

	str := func(s string) *string { return &s }
	order := func(n int) *int { return &n }

	features := []model.Feature{
		{Icon: str("brain"), Title: str("AI Summaries"), Description: str("Condense long documents into actionable takeaways."), DisplayOrder: order(1), Status: "PUBLISHED"},
		{Icon: str("search"), Title: str("Semantic Search"), Description: str("Find ideas by meaning, not keywords."), DisplayOrder: order(2), Status: "PUBLISHED"},
		{Icon: str("users"), Title: str("Team Spaces"), Description: str("Shared notebooks with granular permissions."), Status: "PUBLISHED"},
		{Icon: str("shield"), Title: str("SSO & Audit"), Description: str("Enterprise controls out of the box."), Status: "DRAFT"},
	}

	for _, f := range features {
		if err := db.Create(&f).Error; err != nil {
			color.Red("Error creating feature '%s': %v", *f.Title, err)
		} else {
			color.Green("Created feature: %s", *f.Title)
		}
	}
}

func seedSectionSettings(db *gorm.DB) {
	color.Cyan("Seeding feature section settings...")

	var count int64
	db.Model(&model.FeatureSectionSetting{}).Count(&count)
	if count > 0 {
		color.Yellow("Section settings already exist, skipping...")
		return
	}

	setting := model.FeatureSectionSetting{
		SectionTitle:       "Everything you need to think smarter",
		SectionDescription: "Powerful features designed to help you make better decisions faster. Built for teams of all sizes.",
	}
	if err := db.Create(&setting).Error; err != nil {
		color.Red("Error creating section settings: %v", err)
	} else {
		color.Green("Created section settings")
	}
}
