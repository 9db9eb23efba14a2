package mappers

import (
	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
)

// ProductMapper converts catalog products. Products carry no invariants that
// can fail on load, so ToDomain has no error.
type ProductMapper interface {
	ToModel(p *catalog.Product) *models.ProductModel
	ToDomain(model *models.ProductModel) *catalog.Product
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToModel(p *catalog.Product) *models.ProductModel {
	model := &models.ProductModel{
		ID:             p.ID(),
		SKU:            p.SKU(),
		Name:           p.Name(),
		Slug:           p.Slug(),
		Description:    p.Description(),
		ImageURL:       p.ImageURL(),
		Price:          p.Price(),
		CompareAtPrice: p.CompareAtPrice(),
		StockQuantity:  p.StockQuantity(),
		IsActive:       p.IsActive(),
		Category:       p.Category(),
		Brand:          p.Brand(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
	if g := p.QualityGrade(); g != nil {
		s := string(*g)
		model.QualityGrade = &s
	}
	return model
}

func (m *ProductMapperImpl) ToDomain(model *models.ProductModel) *catalog.Product {
	if model == nil {
		return nil
	}

	var grade *catalog.QualityGrade
	if model.QualityGrade != nil {
		g := catalog.QualityGrade(*model.QualityGrade)
		grade = &g
	}
	return catalog.ReconstructProduct(catalog.ProductParams{
		ID:             model.ID,
		SKU:            model.SKU,
		Name:           model.Name,
		Slug:           model.Slug,
		Description:    model.Description,
		ImageURL:       model.ImageURL,
		Price:          model.Price,
		CompareAtPrice: model.CompareAtPrice,
		QualityGrade:   grade,
		StockQuantity:  model.StockQuantity,
		IsActive:       model.IsActive,
		Category:       model.Category,
		Brand:          model.Brand,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}
