// Package intake turns an untrusted multipart submission into a validated
// applicant row plus an optional stored resume file.
package intake

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"satellite-recruit-backend/internal/model"
	"satellite-recruit-backend/internal/repository"
	"satellite-recruit-backend/internal/storage"
)

// resumeObjectPrefix groups resume objects inside the upload area.
const resumeObjectPrefix = "resumes"

// Submission is the raw form payload of an application. Every value arrives
// as a string from multipart form data.
type Submission struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DepartmentID string
	Experience   string
	Skills       string
	CoverLetter  string
}

// Resume carries the uploaded file, fully buffered so validation finishes
// before anything touches disk.
type Resume struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Service validates submissions and persists the resulting applicant.
type Service struct {
	Repo  *repository.Repository
	Files storage.Client
}

// NewService creates an intake service over the given repository and file
// storage client.
func NewService(repo *repository.Repository, files storage.Client) *Service {
	return &Service{Repo: repo, Files: files}
}

// Submit validates the submission and, on success, stores the resume (when
// present) and inserts the applicant row. The file is written before the row
// so a recorded resumePath always refers to an existing file; when the row
// insert fails the stored file is removed again.
//
// Failure modes: *ValidationError for bad fields, ErrInvalidFile for a bad
// resume, anything else is a store failure. No partial write survives a
// validation failure.
func (s *Service) Submit(sub Submission, resume *Resume) (*model.Applicant, error) {
	fields := map[string]string{}

	firstName := strings.TrimSpace(sub.FirstName)
	if firstName == "" {
		fields["firstName"] = "First name is required"
	}
	lastName := strings.TrimSpace(sub.LastName)
	if lastName == "" {
		fields["lastName"] = "Last name is required"
	}
	experience := strings.TrimSpace(sub.Experience)
	if experience == "" {
		fields["experience"] = "Experience level is required"
	}
	skills := strings.TrimSpace(sub.Skills)
	if skills == "" {
		fields["skills"] = "Skills are required"
	}

	email := strings.TrimSpace(sub.Email)
	if email == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fields["email"] = "Email must be a valid address"
	}

	var departmentID uint
	rawDeptID := strings.TrimSpace(sub.DepartmentID)
	if parsed, err := strconv.ParseUint(rawDeptID, 10, 32); err != nil {
		fields["departmentId"] = "Department id must be a number"
	} else {
		departmentID = uint(parsed)
		if _, err := s.Repo.DepartmentByID(departmentID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				fields["departmentId"] = "Department does not exist"
			} else {
				return nil, err
			}
		}
	}

	if resume != nil {
		if err := validateResume(resume); err != nil {
			return nil, err
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	applicant := &model.Applicant{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		DepartmentID: departmentID,
		Experience:   experience,
		Skills:       skills,
		CreatedAt:    time.Now(),
	}
	if phone := strings.TrimSpace(sub.Phone); phone != "" {
		applicant.Phone = &phone
	}
	if coverLetter := strings.TrimSpace(sub.CoverLetter); coverLetter != "" {
		applicant.CoverLetter = &coverLetter
	}

	if resume != nil {
		objectName := fmt.Sprintf("%s/%s%s",
			resumeObjectPrefix, uuid.NewString(), strings.ToLower(filepath.Ext(resume.Filename)))
		if err := s.Files.Upload(objectName, bytes.NewReader(resume.Data)); err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
		applicant.ResumePath = &objectName
	}

	if err := s.Repo.CreateApplicant(applicant); err != nil {
		if applicant.ResumePath != nil {
			if derr := s.Files.Delete(*applicant.ResumePath); derr != nil {
				log.Printf("failed to remove resume %s after insert failure: %v", *applicant.ResumePath, derr)
			}
		}
		return nil, err
	}

	return applicant, nil
}
