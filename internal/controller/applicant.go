package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"satellite-recruit-backend/internal/intake"
	"satellite-recruit-backend/internal/repository"
	"satellite-recruit-backend/internal/storage"
	"satellite-recruit-backend/internal/utilities"
)

// ApplicantController handles applicant related endpoints
type ApplicantController struct {
	Intake *intake.Service
	Repo   *repository.Repository
	Files  storage.Client
}

// NewApplicantController creates a new instance of ApplicantController
func NewApplicantController(svc *intake.Service, repo *repository.Repository, files storage.Client) *ApplicantController {
	return &ApplicantController{
		Intake: svc,
		Repo:   repo,
		Files:  files,
	}
}

// CreateApplicant handles a multipart application submission: form fields
// plus an optional resume file under the "resume" field.
// @Summary Submit a new application
// @Description Resume is optional; only PDF, DOC and DOCX up to 10 MiB are accepted
// @Tags Applicant
// @Accept mpfd
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email address"
// @Param phone formData string false "Phone number"
// @Param departmentId formData int true "Department id"
// @Param experience formData string true "Experience level"
// @Param skills formData string true "Skills"
// @Param coverLetter formData string false "Cover letter"
// @Param resume formData file false "Resume file"
// @Success 201 {object} model.Applicant "Successfully created applicant"
// @Failure 400 {object} utilities.ValidationErrorResponse "Validation failed or invalid file"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applicants [post]
func (ac *ApplicantController) CreateApplicant(c *gin.Context) {
	sub := intake.Submission{
		FirstName:    c.PostForm("firstName"),
		LastName:     c.PostForm("lastName"),
		Email:        c.PostForm("email"),
		Phone:        c.PostForm("phone"),
		DepartmentID: c.PostForm("departmentId"),
		Experience:   c.PostForm("experience"),
		Skills:       c.PostForm("skills"),
		CoverLetter:  c.PostForm("coverLetter"),
	}

	resume, err := ac.readResume(c)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		// The multipart parser does not always preserve the error type
		// raised by http.MaxBytesReader, hence the message check.
		if errors.As(err, &maxBytesError) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Resume exceeds the 10 MiB limit",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read uploaded file: %s", err.Error()),
		})
		return
	}

	applicant, err := ac.Intake.Submit(sub, resume)
	if err != nil {
		var validationErr *intake.ValidationError
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
				Error:  "Validation failed",
				Fields: validationErr.Fields,
			})
		case errors.Is(err, intake.ErrInvalidFile):
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: err.Error(),
			})
		case errors.As(err, &pgErr) && pgErr.Code == "23503":
			// FK violation backstop; the intake check races with a
			// hypothetical department removal.
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Invalid department id",
			})
		default:
			log.Printf("Error creating applicant: %v", err)
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to create applicant record",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, applicant)
}

// readResume pulls the optional resume file out of the multipart form and
// buffers it. Returns nil when the submission carries no file.
func (ac *ApplicantController) readResume(c *gin.Context) (*intake.Resume, error) {
	rawFile, err := c.FormFile("resume")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := rawFile.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &intake.Resume{
		Filename:    rawFile.Filename,
		ContentType: rawFile.Header.Get("Content-Type"),
		Size:        rawFile.Size,
		Data:        fileBytes,
	}, nil
}

// GetApplicants fetches every applicant, newest first.
// @Summary List all applicants
// @Description Admin only
// @Tags Applicant
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Applicant "Return applicant list, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applicants [get]
func (ac *ApplicantController) GetApplicants(c *gin.Context) {
	applicants, err := ac.Repo.Applicants()
	if err != nil {
		log.Printf("Error fetching applicants: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch applicants",
		})
		return
	}

	c.JSON(http.StatusOK, applicants)
}

// DeleteApplicant removes an applicant row and its stored resume. The row
// delete comes first; a failed file removal is logged, never propagated.
// @Summary Delete one applicant by id
// @Description Admin only. Removes the stored resume file as well
// @Tags Applicant
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "ID of applicant to delete"
// @Success 200 {object} map[string]bool "Deletion acknowledgement"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Applicant not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applicants/{id} [delete]
func (ac *ApplicantController) DeleteApplicant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid applicant ID",
		})
		return
	}

	applicant, err := ac.Repo.ApplicantByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Applicant not found",
			})
			return
		}
		log.Printf("Error fetching applicant: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to delete applicant",
		})
		return
	}

	if err := ac.Repo.DeleteApplicant(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Applicant not found",
			})
			return
		}
		log.Printf("Error deleting applicant: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to delete applicant",
		})
		return
	}

	if applicant.ResumePath != nil {
		if err := ac.Files.Delete(*applicant.ResumePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			log.Printf("failed to remove resume %s of deleted applicant %d: %v", *applicant.ResumePath, applicant.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DownloadResume streams the stored resume of an applicant as a downloadable
// attachment.
// @Summary Retrieve an applicant's resume file
// @Description Admin only
// @Tags Applicant
// @Produce octet-stream
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "ID of the applicant"
// @Success 200 {string} binary "Successfully retrieve file"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Applicant or resume not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /admin/applicants/{id}/resume [get]
func (ac *ApplicantController) DownloadResume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid applicant ID",
		})
		return
	}

	applicant, err := ac.Repo.ApplicantByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Applicant not found",
			})
			return
		}
		log.Printf("Error fetching applicant: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch applicant",
		})
		return
	}

	if applicant.ResumePath == nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: "Applicant has no resume on file",
		})
		return
	}

	reader, size, err := ac.Files.Open(*applicant.ResumePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Resume file not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to open resume: %s", err.Error()),
		})
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close storage reader: %v", err)
		}
	}()

	filename := fmt.Sprintf("%d%s", applicant.ID, filepath.Ext(*applicant.ResumePath))
	c.Writer.Header().Set("Content-Disposition", "attachment; filename="+filename)
	c.Writer.Header().Set("Content-Type", "application/octet-stream")
	if size > 0 {
		c.Writer.Header().Set("Content-Length", fmt.Sprint(size))
	}

	if _, err := io.Copy(c.Writer, reader); err != nil {
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to send file content",
			})
		} else {
			c.Abort()
		}
	}
}
