package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"satellite-recruit-backend/internal/database"
	"satellite-recruit-backend/internal/model"
	"satellite-recruit-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct
var testRepo *Repository

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}
	testRepo = New(testDB)

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
}

func TestDepartmentsSeeded(t *testing.T) {
	departments, err := testRepo.Departments()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(departments), 3)
}

func TestDepartmentByIDNotFound(t *testing.T) {
	_, err := testRepo.DepartmentByID(999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicantLifecycle(t *testing.T) {
	older := &model.Applicant{
		FirstName:    "Early",
		LastName:     "Bird",
		Email:        "early@example.com",
		DepartmentID: database.TestDepartments[0].ID,
		Experience:   "1-3",
		Skills:       "orbital mechanics",
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	newer := &model.Applicant{
		FirstName:    "Late",
		LastName:     "Comer",
		Email:        "late@example.com",
		DepartmentID: database.TestDepartments[0].ID,
		Experience:   "3-5",
		Skills:       "rf design",
		ResumePath:   testutil.StringPtr("resumes/late.pdf"),
		CreatedAt:    time.Now(),
	}

	assert.NoError(t, testRepo.CreateApplicant(older))
	assert.NoError(t, testRepo.CreateApplicant(newer))
	assert.NotZero(t, older.ID)
	assert.NotZero(t, newer.ID)

	// Listing is newest first
	applicants, err := testRepo.Applicants()
	assert.NoError(t, err)
	if assert.GreaterOrEqual(t, len(applicants), 2) {
		assert.Equal(t, newer.ID, applicants[0].ID)
	}

	fetched, err := testRepo.ApplicantByID(newer.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Late", fetched.FirstName)
	if assert.NotNil(t, fetched.ResumePath) {
		assert.Equal(t, "resumes/late.pdf", *fetched.ResumePath)
	}

	assert.NoError(t, testRepo.DeleteApplicant(older.ID))
	assert.ErrorIs(t, testRepo.DeleteApplicant(older.ID), ErrNotFound)
	_, err = testRepo.ApplicantByID(older.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicantRejectsUnknownDepartmentFK(t *testing.T) {
	applicant := &model.Applicant{
		FirstName:    "No",
		LastName:     "Department",
		Email:        "nodept@example.com",
		DepartmentID: 999999,
		Experience:   "1-3",
		Skills:       "none",
		CreatedAt:    time.Now(),
	}
	assert.Error(t, testRepo.CreateApplicant(applicant))
}

func TestAboutUpsertLastWriteWins(t *testing.T) {
	first, err := testRepo.UpsertAboutUs("We build a research satellite.")
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := testRepo.UpsertAboutUs("We build and launch a research satellite.")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	current, err := testRepo.AboutUs()
	assert.NoError(t, err)
	assert.Equal(t, "We build and launch a research satellite.", current.Content)

	// Single-row upsert, not an append
	var count int64
	assert.NoError(t, testDB.Model(&model.AboutUs{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserByUsername(t *testing.T) {
	user, err := testRepo.UserByUsername(database.TestAdminUser.Username)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	_, err = testRepo.UserByUsername("nobody_here")
	assert.ErrorIs(t, err, ErrNotFound)
}
