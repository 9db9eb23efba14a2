// Package common holds request parsing shared by the HTTP handlers.
package common

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

// BindJSON decodes the body into dst and runs the validate tags on it.
// Decode failures never echo the parser message back to the client.
func BindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewValidationError("request body is required")
		}
		return apperrors.NewValidationError("invalid request body")
	}
	return utils.ValidateStruct(dst)
}

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

// AddressRequest is the structured address accepted by checkout, saved
// addresses and wholesale applications.
type AddressRequest struct {
	FullName   string  `json:"full_name" validate:"required,max=100"`
	Line1      string  `json:"line1" validate:"required,max=200"`
	Line2      *string `json:"line2,omitempty" validate:"omitempty,max=200"`
	City       string  `json:"city" validate:"required,max=100"`
	State      string  `json:"state" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=20"`
	Country    string  `json:"country,omitempty" validate:"omitempty,len=2"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

func (r AddressRequest) ToPostal() sharedvo.PostalAddress {
	return sharedvo.PostalAddress{
		FullName:   r.FullName,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    strings.ToUpper(r.Country),
		Phone:      r.Phone,
	}
}
