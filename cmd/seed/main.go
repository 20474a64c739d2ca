package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/config"
	"github.com/gemechis22/campusswap-ecommerce/internal/db"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
)

// seedCategory bundles a category with its demo listings.
type seedCategory struct {
	Name     string
	Slug     string
	Products []seedProduct
}

type seedProduct struct {
	Title       string
	Description string
	Price       string
	Stock       int
}

var seedData = []seedCategory{
	{
		Name: "Textbooks", Slug: "textbooks",
		Products: []seedProduct{
			{Title: "Calculus: Early Transcendentals", Description: "8th edition, lightly annotated.", Price: "45.00", Stock: 3},
			{Title: "Introduction to Algorithms", Description: "CLRS, hardcover, good condition.", Price: "60.00", Stock: 2},
			{Title: "Organic Chemistry", Description: "Includes solutions manual.", Price: "38.50", Stock: 1},
		},
	},
	{
		Name: "Electronics", Slug: "electronics",
		Products: []seedProduct{
			{Title: "TI-84 Plus Calculator", Description: "Works perfectly, new batteries.", Price: "55.00", Stock: 4},
			{Title: "USB-C Dock", Description: "HDMI + 3x USB-A + ethernet.", Price: "25.00", Stock: 6},
		},
	},
	{
		Name: "Furniture", Slug: "furniture",
		Products: []seedProduct{
			{Title: "Desk Lamp", Description: "LED, three brightness levels.", Price: "12.00", Stock: 5},
			{Title: "Mini Fridge", Description: "Dorm sized, quiet.", Price: "70.00", Stock: 1},
		},
	},
	{
		Name: "Clothing", Slug: "clothing",
		Products: []seedProduct{
			{Title: "University Hoodie (L)", Description: "Worn twice.", Price: "18.00", Stock: 2},
		},
	},
}

const (
	adminEmail    = "admin@campusswap.local"
	adminPassword = "admin-change-me"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	categories, products, err := seedCatalog(ctx, categoryRepo, productRepo, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Categories created: %d", categories)
	log.Printf("  - Products created: %d", products)
	log.Printf("  - Admin user: %s", admin.Email)
}

// seedAdmin creates the admin user if it does not already exist.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Printf("Admin user already exists: %s", adminEmail)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         "CampusSwap Admin",
		Email:        adminEmail,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	log.Printf("Created admin user: %s", adminEmail)
	return admin, nil
}

// seedCatalog creates categories and their demo listings, skipping
// categories that already exist.
func seedCatalog(ctx context.Context, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, sellerID uint) (categories int, products int, err error) {
	for _, sc := range seedData {
		category, err := categoryRepo.FindBySlug(ctx, sc.Slug)
		if err == gorm.ErrRecordNotFound {
			category = &model.Category{Name: sc.Name, Slug: sc.Slug}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return categories, products, err
			}
			categories++
		} else if err != nil {
			return categories, products, err
		} else {
			log.Printf("Category already exists, skipping its products: %s", sc.Slug)
			continue
		}

		for _, sp := range sc.Products {
			price, err := decimal.NewFromString(sp.Price)
			if err != nil {
				log.Printf("Skipping product %q with invalid price: %s", sp.Title, sp.Price)
				continue
			}
			product := &model.Product{
				SellerID:    sellerID,
				CategoryID:  category.ID,
				Title:       sp.Title,
				Description: sp.Description,
				Price:       price,
				Stock:       sp.Stock,
				Active:      true,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return categories, products, err
			}
			products++
		}
	}
	return categories, products, nil
}
