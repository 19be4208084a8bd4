// Package repository defines the persistence ports of the stub backend.
// Implementations live in subpackages; memory is the only one.
package repository

import (
	"context"
	"errors"
	"time"

	"ipoadvisor/internal/model"
)

var (
	// ErrNotFound is returned when no record has the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a key is already taken.
	ErrDuplicate = errors.New("duplicate key")
)

// ContactRepository stores contact-page inquiries. List returns insertion order.
type ContactRepository interface {
	Create(ctx context.Context, c model.Contact) error
	FindByID(ctx context.Context, id string) (model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, c model.Contact) error
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository stores qualification leads. List returns insertion order.
type ApplicationRepository interface {
	Create(ctx context.Context, a model.Application) error
	FindByID(ctx context.Context, id string) (model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	Update(ctx context.Context, a model.Application) error
	Delete(ctx context.Context, id string) error
}

// BlogRepository stores posts keyed by slug.
type BlogRepository interface {
	Create(ctx context.Context, p model.BlogPost) error
	FindBySlug(ctx context.Context, slug string) (model.BlogPost, error)
	List(ctx context.Context) ([]model.BlogPost, error)
	// Replace stores p in place of the post under slug. A change of slug fails with
	// ErrDuplicate when p.Slug is taken.
	Replace(ctx context.Context, slug string, p model.BlogPost) error
	Delete(ctx context.Context, slug string) error
}

// FileRepository stores upload metadata keyed by file name.
type FileRepository interface {
	Create(ctx context.Context, f model.UploadedFile) error
	FindByName(ctx context.Context, name string) (model.UploadedFile, error)
	List(ctx context.Context) ([]model.UploadedFile, error)
	Delete(ctx context.Context, name string) error
}

// Token is an issued admin bearer token.
type Token struct {
	Value     string
	Email     string
	ExpiresAt time.Time
}

// TokenRepository stores issued admin tokens.
type TokenRepository interface {
	Save(ctx context.Context, t Token) error
	Find(ctx context.Context, value string) (Token, error)
	Delete(ctx context.Context, value string) error
	// DeleteExpired removes every token that expired at or before now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
