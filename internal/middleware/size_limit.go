package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var multipartOverhead = int64(8 * 1024) // rough padding for part headers

// SizeLimit is a middleware that caps the request body at maxBodyBytes plus
// multipart overhead. Reading past the cap yields http.MaxBytesError, which
// the applicant handler turns into a file rejection.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := c.Writer

		c.Request.Body = http.MaxBytesReader(w, c.Request.Body, maxBodyBytes+multipartOverhead)

		c.Next()
	}
}
