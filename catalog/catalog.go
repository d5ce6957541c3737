package catalog

import (
	"errors"
	"strings"

	"tienda-storefront/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("product not found")

// Catalog is the read side of the product catalog. Admin changes happen
// elsewhere; the storefront only lists, filters and looks up products.
type Catalog struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{DB: db}
}

// List returns every product with its category, newest first.
func (c *Catalog) List() ([]models.Product, error) {
	var products []models.Product
	err := c.DB.Preload("Category").Order("created_at DESC").Find(&products).Error
	return products, err
}

// Get looks up a single product by id.
func (c *Catalog) Get(id uint) (*models.Product, error) {
	var product models.Product
	err := c.DB.Preload("Category").Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search filters by a case-insensitive term over name and description and
// optionally by category name. Empty arguments match everything.
func (c *Catalog) Search(term, category string) ([]models.Product, error) {
	// Qualified column name because the category join below would make a
	// bare created_at ambiguous.
	query := c.DB.Preload("Category").Order("products.created_at DESC")

	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", like, like)
	}
	if category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", category)
	}

	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

// Categories returns all category names for the filter dropdown, sorted.
func (c *Catalog) Categories() ([]models.Category, error) {
	var categories []models.Category
	err := c.DB.Order("name").Find(&categories).Error
	return categories, err
}
