package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalClient stores objects as files under Root.
type LocalClient struct {
	Root string
}

// NewLocalClient creates the uploads directory when missing and returns a
// client rooted there. An empty root defaults to "uploads".
func NewLocalClient(root string) (*LocalClient, error) {
	if root == "" {
		root = "uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory %q: %w", root, err)
	}
	return &LocalClient{Root: root}, nil
}

// path maps an object name onto the filesystem, rejecting names that would
// escape the root.
func (l *LocalClient) path(objectName string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(objectName))
	if cleaned == "." || filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}
	return filepath.Join(l.Root, cleaned), nil
}

// Upload writes the object. A name collision is an error rather than an
// overwrite; callers generate collision-resistant names.
func (l *LocalClient) Upload(objectName string, data io.Reader) error {
	target, err := l.path(objectName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create object directory: %w", err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create object %q: %w", objectName, err)
	}

	if _, err := io.Copy(f, data); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return fmt.Errorf("write object %q: %w", objectName, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close object %q: %w", objectName, err)
	}
	return nil
}

// Open returns a reader over the stored object and its size.
func (l *LocalClient) Open(objectName string) (io.ReadCloser, int64, error) {
	target, err := l.path(objectName)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrObjectNotFound
		}
		return nil, 0, fmt.Errorf("open object %q: %w", objectName, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("stat object %q: %w", objectName, err)
	}
	return f, info.Size(), nil
}

// Delete removes the stored object.
func (l *LocalClient) Delete(objectName string) error {
	target, err := l.path(objectName)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("delete object %q: %w", objectName, err)
	}
	return nil
}
