package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

// QualityGrade is informational only; it never affects pricing.
type QualityGrade string

const (
	GradeOEM      QualityGrade = "OEM"
	GradePremium  QualityGrade = "PREMIUM"
	GradeStandard QualityGrade = "STANDARD"
)

func (g QualityGrade) IsValid() bool {
	return g == GradeOEM || g == GradePremium || g == GradeStandard
}

func ParseQualityGrade(s string) (QualityGrade, error) {
	g := QualityGrade(strings.ToUpper(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", fmt.Errorf("invalid quality grade: %s", s)
	}
	return g, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases and joins alphanumeric runs with hyphens.
func Slugify(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

type Product struct {
	id             uint
	sku            string
	name           string
	slug           string
	description    string
	imageURL       *string
	price          decimal.Decimal
	compareAtPrice *decimal.Decimal
	qualityGrade   *QualityGrade
	stockQuantity  int
	isActive       bool
	category       *string
	brand          *string
	createdAt      time.Time
	updatedAt      time.Time
}

type ProductParams struct {
	ID             uint
	SKU            string
	Name           string
	Slug           string
	Description    string
	ImageURL       *string
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal
	QualityGrade   *QualityGrade
	StockQuantity  int
	IsActive       bool
	Category       *string
	Brand          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProduct validates catalog input used by seeding. Slug defaults to the
// slugified name.
func NewProduct(p ProductParams) (*Product, error) {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Name = strings.TrimSpace(p.Name)
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}

	var fields []errors.FieldError
	if p.SKU == "" {
		fields = append(fields, errors.FieldError{Field: "sku", Message: "sku is required"})
	}
	if p.Name == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name is required"})
	}
	if p.Price.IsNegative() {
		fields = append(fields, errors.FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if p.StockQuantity < 0 {
		fields = append(fields, errors.FieldError{Field: "stock_quantity", Message: "stock_quantity cannot be negative"})
	}
	if p.QualityGrade != nil && !p.QualityGrade.IsValid() {
		fields = append(fields, errors.FieldError{Field: "quality_grade", Message: "quality_grade must be OEM, PREMIUM or STANDARD"})
	}
	if len(fields) > 0 {
		return nil, errors.NewValidationError("invalid product").WithFields(fields...)
	}

	now := biztime.NowUTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return ReconstructProduct(p), nil
}

func ReconstructProduct(p ProductParams) *Product {
	return &Product{
		id:             p.ID,
		sku:            p.SKU,
		name:           p.Name,
		slug:           p.Slug,
		description:    p.Description,
		imageURL:       p.ImageURL,
		price:          p.Price,
		compareAtPrice: p.CompareAtPrice,
		qualityGrade:   p.QualityGrade,
		stockQuantity:  p.StockQuantity,
		isActive:       p.IsActive,
		category:       p.Category,
		brand:          p.Brand,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

func (p *Product) ID() uint {
	return p.id
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) ImageURL() *string {
	return p.imageURL
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) CompareAtPrice() *decimal.Decimal {
	return p.compareAtPrice
}

func (p *Product) QualityGrade() *QualityGrade {
	return p.qualityGrade
}

func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

func (p *Product) IsActive() bool {
	return p.isActive
}

func (p *Product) Category() *string {
	return p.category
}

func (p *Product) Brand() *string {
	return p.brand
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) SetID(id uint) {
	p.id = id
}

// CanFulfil reports whether qty units can be sold right now.
func (p *Product) CanFulfil(qty int) bool {
	return p.isActive && qty > 0 && qty <= p.stockQuantity
}
