package intake

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"first.last@sub.domain.org",
		"a@b.c",
	}
	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"not-an-email",
		"missing-domain@",
		"@missing-local.com",
		"no-dot-after@domain",
		"white space@example.com",
		"trailing@example.com ",
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), "expected %q to be invalid", email)
	}
}

func TestValidateResumeSizeLimit(t *testing.T) {
	resume := &Resume{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        15 << 20,
		Data:        bytes.Repeat([]byte("a"), 64),
	}
	assert.ErrorIs(t, validateResume(resume), ErrInvalidFile)
}

func TestValidateResumeTypes(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		wantErr     bool
	}{
		{"pdf mime", "resume.pdf", "application/pdf", false},
		{"doc mime", "resume.doc", "application/msword", false},
		{"docx mime", "resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", false},
		{"mime with charset", "resume.pdf", "application/pdf; charset=binary", false},
		{"generic type allowed ext", "resume.docx", "application/octet-stream", false},
		{"no type allowed ext", "resume.pdf", "", false},
		{"explicit wrong mime", "resume.pdf", "text/plain", true},
		{"image", "photo.png", "image/png", true},
		{"generic type bad ext", "malware.exe", "application/octet-stream", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resume := &Resume{
				Filename:    tc.filename,
				ContentType: tc.contentType,
				Size:        128,
				Data:        []byte("content"),
			}
			err := validateResume(resume)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFile)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"email":     "Email is required",
		"firstName": "First name is required",
	}}
	assert.Equal(t, "validation failed: email, firstName", err.Error())
}
