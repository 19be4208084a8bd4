// Package service holds the stub backend's use cases, one service per resource.
package service

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrSlugTaken          = errors.New("slug already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrReaderNil          = errors.New("reader is nil")
	ErrNameRequired       = errors.New("file name is required")
)

// timestamp formats t the way every stored record carries it.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
