package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSizeLimitRejectsOversizedBody(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(1024), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body too large"})
			return
		}
		c.Status(http.StatusOK)
	})

	body := bytes.Repeat([]byte("a"), 64*1024)
	req, _ := http.NewRequest(http.MethodPost, "/upload", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSizeLimitAllowsSmallBody(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(1024), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body too large"})
			return
		}
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("tiny")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminWithoutHeader(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireAdmin(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireAdminWithGarbageToken(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireAdmin(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
