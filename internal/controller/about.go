package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"satellite-recruit-backend/internal/model"
	"satellite-recruit-backend/internal/repository"
	"satellite-recruit-backend/internal/utilities"
)

// defaultAboutContent is served when no about-us row was ever written; the
// frontend shows the same fallback.
const defaultAboutContent = "Default about us content."

// AboutController handles about-us content endpoints
type AboutController struct {
	Repo *repository.Repository
}

// NewAboutController creates a new instance of AboutController
func NewAboutController(repo *repository.Repository) *AboutController {
	return &AboutController{Repo: repo}
}

type aboutUpdate struct {
	Content string `json:"content" binding:"required"`
}

// GetAbout returns the current about-us row, or a default-content object
// when none exists yet.
// @Summary Get the about-us content
// @Tags About
// @Produce json
// @Success 200 {object} model.AboutUs "Current about-us content"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /about [get]
func (bc *AboutController) GetAbout(c *gin.Context) {
	about, err := bc.Repo.AboutUs()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, model.AboutUs{Content: defaultAboutContent})
			return
		}
		log.Printf("Error fetching about us content: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch about us content",
		})
		return
	}

	c.JSON(http.StatusOK, about)
}

// UpdateAbout upserts the about-us content. The first call creates the row,
// later calls overwrite it; last write wins.
// @Summary Update the about-us content
// @Description Admin only
// @Tags About
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Content body aboutUpdate true "New content"
// @Success 200 {object} model.AboutUs "Upserted about-us row"
// @Failure 400 {object} utilities.ErrorResponse "Content missing or not a string"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/about [put]
func (bc *AboutController) UpdateAbout(c *gin.Context) {
	var update aboutUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Content is required",
		})
		return
	}

	about, err := bc.Repo.UpsertAboutUs(update.Content)
	if err != nil {
		log.Printf("Error updating about us content: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to update about us content",
		})
		return
	}

	c.JSON(http.StatusOK, about)
}
