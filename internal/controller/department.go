// Package controller provides HTTP handlers for the recruitment API.
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"satellite-recruit-backend/internal/repository"
	"satellite-recruit-backend/internal/utilities"
)

// DepartmentController handles department related endpoints
type DepartmentController struct {
	Repo *repository.Repository
}

// NewDepartmentController creates a new instance of DepartmentController
func NewDepartmentController(repo *repository.Repository) *DepartmentController {
	return &DepartmentController{Repo: repo}
}

// GetDepartments fetches every department from the database and returns them
// as a JSON response. An empty table yields an empty list; nothing is seeded
// on the request path.
// @Summary List all departments
// @Tags Department
// @Produce json
// @Success 200 {array} model.Department "Return department list"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /departments [get]
func (dc *DepartmentController) GetDepartments(c *gin.Context) {
	departments, err := dc.Repo.Departments()
	if err != nil {
		log.Printf("Error fetching departments: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch departments",
		})
		return
	}

	c.JSON(http.StatusOK, departments)
}

// GetDepartment fetches a single department by id.
// @Summary Get one department by id
// @Tags Department
// @Produce json
// @Param id path int true "ID of wanted department"
// @Success 200 {object} model.Department "Return department"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 404 {object} utilities.ErrorResponse "Department not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /departments/{id} [get]
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid department ID",
		})
		return
	}

	department, err := dc.Repo.DepartmentByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Department not found",
			})
			return
		}
		log.Printf("Error fetching department: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch department",
		})
		return
	}

	c.JSON(http.StatusOK, department)
}
