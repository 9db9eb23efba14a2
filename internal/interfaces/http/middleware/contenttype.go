package middleware

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

// RequireJSON rejects mutating requests whose body is not application/json
// with 415. Bodiless DELETE requests pass.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		case http.MethodDelete:
			if c.Request.ContentLength <= 0 {
				c.Next()
				return
			}
		default:
			c.Next()
			return
		}

		mediaType, _, err := mime.ParseMediaType(c.GetHeader(constants.HeaderContentType))
		if err != nil || mediaType != constants.ContentTypeJSON {
			utils.AbortWithError(c, errors.NewUnsupportedMediaTypeError("content type must be application/json"))
			return
		}
		c.Next()
	}
}
