package handler

import (
	"github.com/gofiber/fiber/v2"

	"ipoadvisor/internal/http/middleware"
	"ipoadvisor/internal/service"
)

// Services bundles everything the routes call into.
type Services struct {
	Auth  service.AuthService
	Leads service.LeadService
	Stats service.StatsService
	Blog  service.BlogService
	Files service.FileService
}

// RegisterRoutes attaches the public and admin API. Admin routes other than login sit
// behind middleware.BearerAuth.
func RegisterRoutes(app *fiber.App, svc Services, maxUploadBytes int64) {
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/contact", SubmitContact(svc.Leads))
	api.Post("/application", SubmitApplication(svc.Leads))
	api.Get("/blog", ListBlogPosts(svc.Blog))
	api.Get("/blog/:slug", GetBlogPost(svc.Blog))
	api.Get("/files/:name", ServeFile(svc.Files))

	// registered ahead of the admin group so BearerAuth never sees it
	api.Post("/admin/login", Login(svc.Auth))

	admin := api.Group("/admin", middleware.BearerAuth(svc.Auth))
	admin.Get("/verify", Verify())
	admin.Get("/stats", GetStats(svc.Stats))

	admin.Get("/contacts", ListContacts(svc.Leads))
	admin.Put("/contacts/:id", UpdateContact(svc.Leads))
	admin.Delete("/contacts/:id", DeleteContact(svc.Leads))

	admin.Get("/applications", ListApplications(svc.Leads))
	admin.Put("/applications/:id", UpdateApplication(svc.Leads))
	admin.Delete("/applications/:id", DeleteApplication(svc.Leads))

	admin.Get("/blog", ListBlogPosts(svc.Blog))
	admin.Post("/blog", CreateBlogPost(svc.Blog))
	admin.Put("/blog/:slug", UpdateBlogPost(svc.Blog))
	admin.Delete("/blog/:slug", DeleteBlogPost(svc.Blog))

	admin.Get("/files", ListFiles(svc.Files))
	admin.Post("/files/upload", UploadFile(svc.Files, maxUploadBytes))
	admin.Delete("/files/:name", DeleteFile(svc.Files))
}
