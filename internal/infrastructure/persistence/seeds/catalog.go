// Package seeds loads the product catalog fixture used by `phonefix seed`.
package seeds

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
)

// CatalogFile is the YAML document shape:
//
//	products:
//	  - sku: SCR-IP13-OEM
//	    name: iPhone 13 Screen (OEM)
//	    price: "129.99"
//	    stock_quantity: 12
type CatalogFile struct {
	Products []ProductEntry `yaml:"products"`
}

type ProductEntry struct {
	SKU            string `yaml:"sku"`
	Name           string `yaml:"name"`
	Slug           string `yaml:"slug"`
	Description    string `yaml:"description"`
	ImageURL       string `yaml:"image_url"`
	Price          string `yaml:"price"`
	CompareAtPrice string `yaml:"compare_at_price"`
	QualityGrade   string `yaml:"quality_grade"`
	StockQuantity  int    `yaml:"stock_quantity"`
	Active         *bool  `yaml:"is_active"`
	Category       string `yaml:"category"`
	Brand          string `yaml:"brand"`
}

func LoadCatalogFile(path string) ([]catalog.ProductParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog decodes a catalog document. Products are active unless
// is_active is explicitly false.
func LoadCatalog(r io.Reader) ([]catalog.ProductParams, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file CatalogFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	params := make([]catalog.ProductParams, 0, len(file.Products))
	for i, e := range file.Products {
		p, err := e.toParams()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, e.SKU, err)
		}
		params = append(params, p)
	}
	return params, nil
}

func (e ProductEntry) toParams() (catalog.ProductParams, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(e.Price))
	if err != nil {
		return catalog.ProductParams{}, fmt.Errorf("invalid price %q", e.Price)
	}

	p := catalog.ProductParams{
		SKU:           e.SKU,
		Name:          e.Name,
		Slug:          e.Slug,
		Description:   e.Description,
		ImageURL:      optional(e.ImageURL),
		Price:         price,
		StockQuantity: e.StockQuantity,
		IsActive:      e.Active == nil || *e.Active,
		Category:      optional(e.Category),
		Brand:         optional(e.Brand),
	}

	if e.CompareAtPrice != "" {
		cmp, err := decimal.NewFromString(strings.TrimSpace(e.CompareAtPrice))
		if err != nil {
			return catalog.ProductParams{}, fmt.Errorf("invalid compare_at_price %q", e.CompareAtPrice)
		}
		p.CompareAtPrice = &cmp
	}
	if e.QualityGrade != "" {
		g, err := catalog.ParseQualityGrade(e.QualityGrade)
		if err != nil {
			return catalog.ProductParams{}, err
		}
		p.QualityGrade = &g
	}
	return p, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
