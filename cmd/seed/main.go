package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"assetpipe/internal/database"
	"assetpipe/internal/domain"
	"assetpipe/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "assetpipe.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM brand_kits")
	db.Exec("DELETE FROM logos")
	db.Exec("DELETE FROM submission_files")
	db.Exec("DELETE FROM submissions")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM api_keys")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	logoRepo := repository.NewLogoRepository(db)
	brandKitRepo := repository.NewBrandKitRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@assetpipe.dev",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("admin create failed:", err)
	}
	log.Println("Admin created: admin@assetpipe.dev / admin123")

	demoHash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := &domain.User{
		Email:        "demo@assetpipe.dev",
		PasswordHash: string(demoHash),
		Role:         domain.RoleUser,
		Name:         "Demo User",
	}
	if err := userRepo.Create(ctx, demo); err != nil {
		log.Fatal("demo user create failed:", err)
	}

	// ================== COMPANIES ==================
	log.Println("Creating companies...")

	companies := []*domain.Company{
		{Name: "Acme, Inc.", Slug: "acme-inc", Domain: "acme.com", Description: "Everything for the modern coyote", WebsiteURL: "https://acme.com", IsVerified: true},
		{Name: "Globex", Slug: "globex", Domain: "globex.com", IsVerified: true},
		{Name: "Initech", Slug: "initech", Domain: "initech.com"},
	}
	for _, c := range companies {
		if err := companyRepo.Create(ctx, c); err != nil {
			log.Fatal("company create failed:", err)
		}
	}

	// ================== LOGOS ==================
	log.Println("Creating logos...")

	acme := companies[0]
	logos := []*domain.Logo{
		{CompanyID: acme.ID, Format: domain.FormatSVG, Variant: domain.VariantPrimary, ColorMode: domain.ColorLight, StoragePath: "acme-inc/primary-light-seed.svg"},
		{CompanyID: acme.ID, Format: domain.FormatPNG, Variant: domain.VariantIcon, ColorMode: domain.ColorDark, StoragePath: "acme-inc/icon-dark-seed.png", FileSize: 2048},
		{CompanyID: companies[1].ID, Format: domain.FormatSVG, Variant: domain.VariantWordmark, ColorMode: domain.ColorMonochrome, StoragePath: "globex/wordmark-monochrome-seed.svg"},
	}
	for _, l := range logos {
		if err := logoRepo.Create(ctx, l); err != nil {
			log.Fatal("logo create failed:", err)
		}
	}

	// ================== BRAND KITS ==================
	log.Println("Creating brand kits...")
	if err := brandKitRepo.Create(ctx, &domain.BrandKit{
		CompanyID:       acme.ID,
		PrimaryColor:    "#FF5A00",
		SecondaryColors: []string{"#1A1A1A", "#FFFFFF"},
		Fonts:           []string{"Inter", "JetBrains Mono"},
		GuidelinesURL:   "https://acme.com/brand",
	}); err != nil {
		log.Fatal("brand kit create failed:", err)
	}

	// ================== PENDING SUBMISSION ==================
	log.Println("Creating a pending submission...")
	sub := &domain.Submission{
		UserID:        demo.ID,
		CompanyName:   "Hooli",
		CompanyDomain: "hooli.xyz",
		Status:        domain.SubmissionPending,
	}
	if err := submissionRepo.Create(ctx, sub); err != nil {
		log.Fatal("submission create failed:", err)
	}

	fmt.Println()
	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@assetpipe.dev / admin123")
	log.Println("User:  demo@assetpipe.dev / demo1234")
}
