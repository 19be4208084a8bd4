// Package console holds the admin screen controllers: the list, filter and edit state of
// each tab, driven by the gateway. Controllers are owned by a single UI loop and are not
// safe for concurrent use. None of them mutate local state optimistically; every change
// is followed by a refetch.
package console

import (
	"context"
	"errors"
	"strings"

	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
)

// StatusAll disables the status or type filter.
const StatusAll = "all"

// ErrUnknownStatus is returned when an edit names a status outside the resource's set.
var ErrUnknownStatus = errors.New("unknown status")

// ContactsGateway is the part of the gateway the contacts tab needs.
type ContactsGateway interface {
	ListContacts(ctx context.Context) ([]model.Contact, error)
	UpdateContact(ctx context.Context, id string, upd model.ContactUpdate) (model.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ApplicationsGateway is the part of the gateway the applications tab needs.
type ApplicationsGateway interface {
	ListApplications(ctx context.Context) ([]model.Application, error)
	UpdateApplication(ctx context.Context, id string, upd model.ApplicationUpdate) (model.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

// BlogGateway is the part of the gateway the blog tab needs.
type BlogGateway interface {
	ListAdminBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	CreateBlogPost(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error)
	UpdateBlogPost(ctx context.Context, slug string, in model.BlogPostInput) (model.BlogPost, error)
	DeleteBlogPost(ctx context.Context, slug string) error
}

// FilesGateway is the part of the gateway the files tab needs.
type FilesGateway interface {
	ListFiles(ctx context.Context) ([]model.UploadedFile, error)
	UploadFiles(ctx context.Context, files []gateway.FileUpload) []gateway.UploadResult
	DeleteFile(ctx context.Context, name string) error
	FileURL(name string) string
}

// SessionGateway is what the dashboard shell needs to guard the admin area.
type SessionGateway interface {
	VerifyStatus(ctx context.Context) gateway.VerifyResult
	Logout(ctx context.Context) error
	Stats(ctx context.Context) (model.Stats, error)
}

// containsFold reports whether any of fields contains term, ignoring case.
// An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesStatus(filter, status string) bool {
	return filter == "" || filter == StatusAll || filter == status
}
