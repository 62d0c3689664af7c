package models

import "fmt"

// Brand is one of the closed set of labels products and events are grouped
// under. BrandInfinity is the umbrella label and is only used by events.
type Brand string

const (
	BrandNova       Brand = "nova"
	BrandXForce     Brand = "xforce"
	BrandLiveMoment Brand = "live-moment"
	BrandInfinity   Brand = "infinity"
)

// ProductBrands returns the brands products are sold under.
func ProductBrands() []Brand {
	return []Brand{BrandNova, BrandXForce, BrandLiveMoment}
}

func (b Brand) Valid() bool {
	switch b {
	case BrandNova, BrandXForce, BrandLiveMoment, BrandInfinity:
		return true
	}
	return false
}

func (b Brand) DisplayName() string {
	switch b {
	case BrandNova:
		return "NOVA"
	case BrandXForce:
		return "XFORCE"
	case BrandLiveMoment:
		return "LIVE THE MOMENT"
	case BrandInfinity:
		return "INFINITY"
	}
	return string(b)
}

// NamePrefix is the product-name prefix used by the catalog generator.
func (b Brand) NamePrefix() string {
	switch b {
	case BrandNova:
		return "Nova Elite"
	case BrandXForce:
		return "X-Force Pro"
	case BrandLiveMoment:
		return "Live The Moment"
	case BrandInfinity:
		return "Infinity"
	}
	return string(b)
}

// Size is a product variant selector, either a clothing size or SizeOne.
type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeOne Size = "One Size"
)

type Sizes []Size

func (s Sizes) Contains(size Size) bool {
	for _, v := range s {
		if v == size {
			return true
		}
	}
	return false
}

// ApparelSizes is the variant set for clothing categories.
func ApparelSizes() Sizes { return Sizes{SizeS, SizeM, SizeL, SizeXL} }

type Category struct {
	ID          string `gorm:"primaryKey"           json:"id"`
	Name        string `gorm:"not null"             json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (Category) TableName() string { return "categories" }

type ProductDetails struct {
	Material   string   `json:"material,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`
	Weight     string   `json:"weight,omitempty"`
	Features   []string `json:"features,omitempty"`
}

// Product is immutable after catalog generation; the cart layer only reads it.
type Product struct {
	ID                 string         `gorm:"primaryKey"      json:"id"`
	Name               string         `gorm:"not null"        json:"name"`
	CategorySlug       string         `gorm:"index;not null"  json:"category"`
	Brand              Brand          `gorm:"index;not null"  json:"brand"`
	OriginalPrice      int64          `gorm:"not null"        json:"original_price"`
	DiscountedPrice    int64          `gorm:"not null"        json:"discounted_price"`
	DiscountPercentage int            `gorm:"not null"        json:"discount_percentage"`
	Image              string         `json:"image"`
	HoverImage         string         `json:"hover_image"`
	Description        string         `json:"description"`
	Details            ProductDetails `gorm:"serializer:json" json:"details"`
	Sizes              Sizes          `gorm:"serializer:json" json:"sizes"`
	InStock            bool           `json:"in_stock"`
}

func (Product) TableName() string { return "products" }

func (p *Product) HasSize(s Size) bool { return p.Sizes.Contains(s) }

// FormatBDT renders a taka amount with thousands separators, e.g. ৳15,000.
func FormatBDT(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-৳" + s
	}
	return "৳" + s
}
