package memory

import (
	"context"
	"time"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
)

// Contacts is an in-memory repository.ContactRepository.
type Contacts struct {
	t *table[model.Contact]
}

func NewContacts() *Contacts {
	return &Contacts{t: newTable(func(c model.Contact) string { return c.ID })}
}

var _ repository.ContactRepository = (*Contacts)(nil)

func (r *Contacts) Create(_ context.Context, c model.Contact) error {
	return r.t.insert(c)
}

func (r *Contacts) FindByID(_ context.Context, id string) (model.Contact, error) {
	return r.t.get(id)
}

func (r *Contacts) List(_ context.Context) ([]model.Contact, error) {
	return r.t.all(), nil
}

func (r *Contacts) Update(_ context.Context, c model.Contact) error {
	return r.t.replace(c.ID, c)
}

func (r *Contacts) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

// Applications is an in-memory repository.ApplicationRepository.
type Applications struct {
	t *table[model.Application]
}

func NewApplications() *Applications {
	return &Applications{t: newTable(func(a model.Application) string { return a.ID })}
}

var _ repository.ApplicationRepository = (*Applications)(nil)

func (r *Applications) Create(_ context.Context, a model.Application) error {
	return r.t.insert(a)
}

func (r *Applications) FindByID(_ context.Context, id string) (model.Application, error) {
	return r.t.get(id)
}

func (r *Applications) List(_ context.Context) ([]model.Application, error) {
	return r.t.all(), nil
}

func (r *Applications) Update(_ context.Context, a model.Application) error {
	return r.t.replace(a.ID, a)
}

func (r *Applications) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

// BlogPosts is an in-memory repository.BlogRepository keyed by slug.
type BlogPosts struct {
	t *table[model.BlogPost]
}

func NewBlogPosts() *BlogPosts {
	return &BlogPosts{t: newTable(func(p model.BlogPost) string { return p.Slug })}
}

var _ repository.BlogRepository = (*BlogPosts)(nil)

func (r *BlogPosts) Create(_ context.Context, p model.BlogPost) error {
	return r.t.insert(p)
}

func (r *BlogPosts) FindBySlug(_ context.Context, slug string) (model.BlogPost, error) {
	return r.t.get(slug)
}

func (r *BlogPosts) List(_ context.Context) ([]model.BlogPost, error) {
	return r.t.all(), nil
}

func (r *BlogPosts) Replace(_ context.Context, slug string, p model.BlogPost) error {
	return r.t.replace(slug, p)
}

func (r *BlogPosts) Delete(_ context.Context, slug string) error {
	return r.t.remove(slug)
}

// Files holds upload metadata; the content lives in object storage.
type Files struct {
	t *table[model.UploadedFile]
}

func NewFiles() *Files {
	return &Files{t: newTable(func(f model.UploadedFile) string { return f.Name })}
}

var _ repository.FileRepository = (*Files)(nil)

func (r *Files) Create(_ context.Context, f model.UploadedFile) error {
	return r.t.insert(f)
}

func (r *Files) FindByName(_ context.Context, name string) (model.UploadedFile, error) {
	return r.t.get(name)
}

func (r *Files) List(_ context.Context) ([]model.UploadedFile, error) {
	return r.t.all(), nil
}

func (r *Files) Delete(_ context.Context, name string) error {
	return r.t.remove(name)
}

// Tokens holds issued admin tokens. The auth service prunes expired ones on every login.
type Tokens struct {
	t *table[repository.Token]
}

func NewTokens() *Tokens {
	return &Tokens{t: newTable(func(tok repository.Token) string { return tok.Value })}
}

var _ repository.TokenRepository = (*Tokens)(nil)

func (r *Tokens) Save(_ context.Context, tok repository.Token) error {
	return r.t.insert(tok)
}

func (r *Tokens) Find(_ context.Context, value string) (repository.Token, error) {
	return r.t.get(value)
}

func (r *Tokens) Delete(_ context.Context, value string) error {
	return r.t.remove(value)
}

func (r *Tokens) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	return r.t.removeIf(func(tok repository.Token) bool { return !now.Before(tok.ExpiresAt) }), nil
}
