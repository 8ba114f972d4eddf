// Package storage persists uploaded files. The recruitment site keeps them
// on local disk under a single uploads directory; the client interface keeps
// the door open for object storage later.
package storage

import (
	"errors"
	"io"
)

// ErrObjectNotFound reports that no stored file matches the object name.
var ErrObjectNotFound = errors.New("stored object not found")

// Client abstracts where uploaded files live. Object names are
// forward-slash separated relative paths, e.g. "resumes/<uuid>.pdf", and are
// the exact value recorded in applicant rows, so write, serve and delete all
// resolve through the same name.
type Client interface {
	Upload(objectName string, data io.Reader) error
	Open(objectName string) (io.ReadCloser, int64, error)
	Delete(objectName string) error
}
