package intake

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// MaxResumeSize is the upload ceiling for resume files.
const MaxResumeSize = 10 << 20 // 10 MiB

// emailPattern accepts local@domain.tld: at least one @, at least one dot
// after it, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s]+$`)

// ErrInvalidFile reports a resume that is too large or of a disallowed type.
// An invalid file always fails the whole submission; it is never silently
// dropped.
var ErrInvalidFile = errors.New("invalid resume file")

// allowedResumeTypes are the MIME types multipart clients send for
// PDF, DOC and DOCX uploads.
var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// allowedResumeExtensions is the fallback for clients that upload with a
// generic content type.
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidationError aggregates every failed field so the application form can
// surface all problems in one round trip.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// validateResume enforces the size and type policy on an uploaded file.
func validateResume(r *Resume) error {
	if r.Size > MaxResumeSize || int64(len(r.Data)) > MaxResumeSize {
		return fmt.Errorf("%w: file exceeds the 10 MiB limit", ErrInvalidFile)
	}

	contentType := strings.ToLower(strings.TrimSpace(r.ContentType))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if allowedResumeTypes[contentType] {
		return nil
	}

	// Browsers derive the content type from the extension; fall back to it
	// only when the client sent nothing specific.
	if contentType == "" || contentType == "application/octet-stream" {
		if allowedResumeExtensions[strings.ToLower(filepath.Ext(r.Filename))] {
			return nil
		}
	}

	return fmt.Errorf("%w: only PDF, DOC and DOCX files are allowed", ErrInvalidFile)
}
