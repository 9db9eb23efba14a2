package repository

import (
	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

// paginate applies offset/limit after clamping to the shared bounds.
func paginate(query *gorm.DB, page, limit int) *gorm.DB {
	p := utils.ValidatePagination(page, limit)
	return query.Offset(p.Offset()).Limit(p.Limit)
}
