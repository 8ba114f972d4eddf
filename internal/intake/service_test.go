package intake

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"satellite-recruit-backend/internal/database"
	"satellite-recruit-backend/internal/repository"
	"satellite-recruit-backend/internal/storage"
)

var testDB *database.DBinstanceStruct
var testRepo *repository.Repository

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}
	testRepo = repository.New(testDB)

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	files, err := storage.NewLocalClient(t.TempDir())
	assert.NoError(t, err)
	return NewService(testRepo, files)
}

func validSubmission() Submission {
	return Submission{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		DepartmentID: fmt.Sprint(database.TestDepartments[0].ID),
		Experience:   "1-3",
		Skills:       "C,Math",
	}
}

func applicantCount(t *testing.T) int {
	t.Helper()
	applicants, err := testRepo.Applicants()
	assert.NoError(t, err)
	return len(applicants)
}

func TestSubmitWithoutFile(t *testing.T) {
	svc := newTestService(t)

	applicant, err := svc.Submit(validSubmission(), nil)
	assert.NoError(t, err)
	assert.NotZero(t, applicant.ID)
	assert.Equal(t, "Ada", applicant.FirstName)
	assert.Equal(t, "Lovelace", applicant.LastName)
	assert.Equal(t, "ada@example.com", applicant.Email)
	assert.Equal(t, database.TestDepartments[0].ID, applicant.DepartmentID)
	assert.Nil(t, applicant.Phone)
	assert.Nil(t, applicant.CoverLetter)
	assert.Nil(t, applicant.ResumePath)
	assert.WithinDuration(t, time.Now(), applicant.CreatedAt, time.Minute)
}

func TestSubmitTrimsAndKeepsOptionals(t *testing.T) {
	svc := newTestService(t)

	sub := validSubmission()
	sub.FirstName = "  Grace  "
	sub.Phone = " 555-0100 "
	sub.CoverLetter = "I build compilers."

	applicant, err := svc.Submit(sub, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Grace", applicant.FirstName)
	if assert.NotNil(t, applicant.Phone) {
		assert.Equal(t, "555-0100", *applicant.Phone)
	}
	if assert.NotNil(t, applicant.CoverLetter) {
		assert.Equal(t, "I build compilers.", *applicant.CoverLetter)
	}
}

func TestSubmitWithResume(t *testing.T) {
	svc := newTestService(t)
	content := []byte("%PDF-1.4 resume body")

	resume := &Resume{
		Filename:    "ada-lovelace.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Data:        content,
	}

	applicant, err := svc.Submit(validSubmission(), resume)
	assert.NoError(t, err)
	if !assert.NotNil(t, applicant.ResumePath) {
		return
	}
	assert.Contains(t, *applicant.ResumePath, "resumes/")
	assert.Contains(t, *applicant.ResumePath, ".pdf")

	// The recorded path must resolve to the stored bytes
	reader, size, err := svc.Files.Open(*applicant.ResumePath)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
	got, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Equal(t, content, got)
	assert.NoError(t, reader.Close())
}

func TestSubmitAggregatesFieldErrors(t *testing.T) {
	svc := newTestService(t)
	before := applicantCount(t)

	_, err := svc.Submit(Submission{DepartmentID: "not-a-number"}, nil)

	var validationErr *ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		for _, field := range []string{"firstName", "lastName", "email", "experience", "skills", "departmentId"} {
			assert.Contains(t, validationErr.Fields, field)
		}
	}
	assert.Equal(t, before, applicantCount(t))
}

func TestSubmitRejectsBadEmail(t *testing.T) {
	svc := newTestService(t)
	before := applicantCount(t)

	sub := validSubmission()
	sub.Email = "not-an-email"

	_, err := svc.Submit(sub, nil)

	var validationErr *ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Contains(t, validationErr.Fields, "email")
		assert.Len(t, validationErr.Fields, 1)
	}
	assert.Equal(t, before, applicantCount(t))
}

func TestSubmitRejectsUnknownDepartment(t *testing.T) {
	svc := newTestService(t)
	before := applicantCount(t)

	sub := validSubmission()
	sub.DepartmentID = "999999"

	_, err := svc.Submit(sub, nil)

	var validationErr *ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Contains(t, validationErr.Fields, "departmentId")
	}
	assert.Equal(t, before, applicantCount(t))
}

func TestSubmitRejectsOversizeResume(t *testing.T) {
	svc := newTestService(t)
	before := applicantCount(t)

	resume := &Resume{
		Filename:    "huge.pdf",
		ContentType: "application/pdf",
		Size:        15 << 20,
		Data:        []byte("truncated"),
	}

	_, err := svc.Submit(validSubmission(), resume)
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.Equal(t, before, applicantCount(t))

	// Nothing may reach the upload area on a rejected file
	local := svc.Files.(*storage.LocalClient)
	entries, readErr := os.ReadDir(local.Root)
	assert.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSubmitRejectsWrongFileType(t *testing.T) {
	svc := newTestService(t)
	before := applicantCount(t)

	resume := &Resume{
		Filename:    "script.exe",
		ContentType: "application/octet-stream",
		Size:        64,
		Data:        []byte("MZ"),
	}

	_, err := svc.Submit(validSubmission(), resume)
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.Equal(t, before, applicantCount(t))
}
