package database

import (
	"os"

	"tienda-storefront/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the embedded database file that holds the catalog and the
// local key-value store. The path comes from STORE_PATH so tests and
// multiple profiles can point somewhere else.
func Connect() (*gorm.DB, error) {
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "storefront.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.StoreEntry{},
	)
}

// SeedDefaultCatalog inserts a starter catalog on first run so the
// storefront is usable before any catalog sync has happened. Does nothing
// when products already exist.
func SeedDefaultCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Fruits", Description: "Fresh seasonal fruit"},
		{Name: "Bakery", Description: "Bread and pastries baked daily"},
		{Name: "Beverages", Description: "Juices, sodas and water"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Apples", Description: "Red apples, sold per kilo", Price: 3.50, CategoryID: categories[0].ID, Stock: 40},
		{Name: "Bananas", Description: "Ripe bananas, sold per kilo", Price: 2.20, CategoryID: categories[0].ID, Stock: 35},
		{Name: "Strawberries", Description: "Punnet of strawberries", Price: 4.75, CategoryID: categories[0].ID, Stock: 12},
		{Name: "Sourdough Loaf", Description: "Stone-baked sourdough", Price: 5.25, CategoryID: categories[1].ID, Stock: 8},
		{Name: "Croissant", Description: "Butter croissant", Price: 1.90, CategoryID: categories[1].ID, Stock: 20},
		{Name: "Orange Juice", Description: "1L freshly squeezed", Price: 3.99, CategoryID: categories[2].ID, Stock: 15},
		{Name: "Sparkling Water", Description: "750ml bottle", Price: 1.50, CategoryID: categories[2].ID, Stock: 48},
	}
	return db.Create(&products).Error
}
