// Package seed builds the storefront catalog from fixed seed tables.
// Generation is deterministic for a given seed value so tests and
// reloads see an identical catalog.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"github.com/infinity-lifestyle/storefront/internal/models"
)

type categorySeed struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Icon        string
	BasePrice   int64
	Sizes       models.Sizes
	Details     models.ProductDetails
}

var categorySeeds = []categorySeed{
	{ID: "1", Name: "Ashtray", Slug: "ashtray", Description: "Premium designer ashtrays", Icon: "🔥", BasePrice: 1500,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Polished ceramic", Dimensions: "12 x 12 x 4 cm", Weight: "350 g", Features: []string{"Scratch resistant", "Embossed brand logo"}}},
	{ID: "2", Name: "Lighter", Slug: "lighter", Description: "Luxury branded lighters", Icon: "🔥", BasePrice: 2500,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Brushed metal", Dimensions: "6 x 3.5 x 1.2 cm", Weight: "60 g", Features: []string{"Refillable", "Windproof flame", "Engraved brand logo"}}},
	{ID: "3", Name: "T-Shirt", Slug: "tshirt", Description: "Exclusive branded tees", Icon: "👕", BasePrice: 3500,
		Sizes:   models.ApparelSizes(),
		Details: models.ProductDetails{Material: "100% combed cotton", Weight: "180 gsm", Features: []string{"Pre-shrunk", "Screen-printed artwork"}}},
	{ID: "4", Name: "Jacket", Slug: "jacket", Description: "Premium designer jackets", Icon: "🧥", BasePrice: 15000,
		Sizes:   models.ApparelSizes(),
		Details: models.ProductDetails{Material: "Water-repellent nylon shell", Features: []string{"Quilted lining", "Hidden inner pocket", "Embroidered brand logo"}}},
	{ID: "5", Name: "Coat Pin", Slug: "coat-pin", Description: "Elegant coat pins", Icon: "📍", BasePrice: 800,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Enamel on zinc alloy", Dimensions: "2.5 x 2.5 cm", Weight: "12 g", Features: []string{"Butterfly clutch back"}}},
	{ID: "6", Name: "Perfume", Slug: "perfume", Description: "Signature fragrances", Icon: "🌸", BasePrice: 5000,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Dimensions: "50 ml", Features: []string{"Eau de parfum", "Signature brand scent"}}},
	{ID: "7", Name: "Cigarette Box", Slug: "cigarette-box", Description: "Designer cigarette cases", Icon: "📦", BasePrice: 2000,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Anodized aluminium", Dimensions: "9.5 x 6 x 2 cm", Weight: "90 g", Features: []string{"Holds 20 kings", "Magnetic clasp"}}},
	{ID: "8", Name: "Mug", Slug: "mug", Description: "Premium coffee mugs", Icon: "☕", BasePrice: 1200,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Stoneware", Dimensions: "350 ml", Weight: "400 g", Features: []string{"Dishwasher safe", "Wraparound print"}}},
	{ID: "9", Name: "Poster", Slug: "poster", Description: "Art prints & posters", Icon: "🖼️", BasePrice: 1500,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "200 gsm matte paper", Dimensions: "50 x 70 cm", Features: []string{"Archival inks", "Numbered print run"}}},
	{ID: "10", Name: "Banner", Slug: "banner", Description: "Decorative banners", Icon: "🏳️", BasePrice: 3000,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Woven polyester", Dimensions: "90 x 150 cm", Features: []string{"Double-stitched hems", "Brass grommets"}}},
	{ID: "11", Name: "Luxury Paintings", Slug: "luxury-paintings", Description: "Exclusive art pieces", Icon: "🎨", BasePrice: 50000,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "Oil on canvas", Dimensions: "80 x 100 cm", Features: []string{"Hand-signed", "Certificate of authenticity"}}},
	{ID: "12", Name: "Luxury Perfume", Slug: "luxury-perfume", Description: "Premium fragrances", Icon: "💎", BasePrice: 25000,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Dimensions: "100 ml", Features: []string{"Extrait de parfum", "Crystal flacon", "Numbered bottle"}}},
	{ID: "13", Name: "Limited Edition Watches", Slug: "limited-watches", Description: "Collector timepieces", Icon: "⌚", BasePrice: 150000,
		Sizes:   models.Sizes{models.SizeOne},
		Details: models.ProductDetails{Material: "316L stainless steel", Dimensions: "41 mm case", Weight: "140 g", Features: []string{"Automatic movement", "Sapphire crystal", "Limited to 500 pieces"}}},
}

func productSuffix(i int) string {
	switch i {
	case 1:
		return "Edition"
	case 2:
		return "Series"
	case 3:
		return "Collection"
	}
	return "Edition"
}

// Categories returns the fixed category set.
func Categories() []models.Category {
	out := make([]models.Category, 0, len(categorySeeds))
	for _, cs := range categorySeeds {
		out = append(out, models.Category{
			ID:          cs.ID,
			Name:        cs.Name,
			Slug:        cs.Slug,
			Description: cs.Description,
			Icon:        cs.Icon,
		})
	}
	return out
}

// Products generates the category x brand cross product, three variants per
// pair. Discount percentage (10-39%) and stock are drawn from a PRNG seeded
// with the given value; everything else is fixed by the seed tables.
func Products(seed int64) []models.Product {
	rng := rand.New(rand.NewSource(seed))
	products := make([]models.Product, 0, len(categorySeeds)*len(models.ProductBrands())*3)

	for _, cs := range categorySeeds {
		for _, brand := range models.ProductBrands() {
			for i := 1; i <= 3; i++ {
				pct := rng.Intn(30) + 10
				original := int64(math.Round(float64(cs.BasePrice) * (1 + 0.2*float64(i))))
				discounted := int64(math.Round(float64(original) * (1 - float64(pct)/100)))
				inStock := rng.Float64() > 0.2

				image := fmt.Sprintf("/assets/products/%s-base.jpg", cs.Slug)
				products = append(products, models.Product{
					ID:                 fmt.Sprintf("%s-%s-%d", cs.Slug, brand, i),
					Name:               fmt.Sprintf("%s %s %s", brand.NamePrefix(), cs.Name, productSuffix(i)),
					CategorySlug:       cs.Slug,
					Brand:              brand,
					OriginalPrice:      original,
					DiscountedPrice:    discounted,
					DiscountPercentage: pct,
					Image:              image,
					HoverImage:         image,
					Description:        fmt.Sprintf("Premium %s from %s collection. Exclusive design with brand logo.", strings.ToLower(cs.Name), brand.DisplayName()),
					Details:            cs.Details,
					Sizes:              cs.Sizes,
					InStock:            inStock,
				})
			}
		}
	}
	return products
}

// Load migrates the catalog tables and fills them once per database.
// Already-seeded databases are left alone; entities never mutate after
// generation.
func Load(database *gorm.DB, seed int64) error {
	if err := database.AutoMigrate(&models.Category{}, &models.Product{}, &models.Event{}); err != nil {
		return fmt.Errorf("seed migrate: %w", err)
	}

	var count int64
	if err := database.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed count: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := database.Create(Categories()).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := database.Create(Products(seed)).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := database.Create(Events()).Error; err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	return nil
}
