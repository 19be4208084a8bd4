package handler

import (
	"time"

	"ipoadvisor/internal/repository/memory"
	"ipoadvisor/internal/service"
	"ipoadvisor/internal/storage"
)

// AdminAccount is the single admin the stub backend accepts.
type AdminAccount struct {
	Email    string
	Password string
	TokenTTL time.Duration
}

// MemoryServices wires every service over in-memory repositories, with file content
// kept in store.
func MemoryServices(store storage.Storage, admin AdminAccount) Services {
	contacts := memory.NewContacts()
	applications := memory.NewApplications()
	posts := memory.NewBlogPosts()
	files := memory.NewFiles()

	return Services{
		Auth:  service.NewAuthService(memory.NewTokens(), admin.Email, admin.Password, admin.TokenTTL),
		Leads: service.NewLeadService(contacts, applications),
		Stats: service.NewStatsService(contacts, applications, posts, files),
		Blog:  service.NewBlogService(posts),
		Files: service.NewFileService(store, files),
	}
}
