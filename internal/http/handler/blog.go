package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/service"
)

// blogBody is what create and update accept. Only slug and title are mandatory here;
// the admin editor enforces the rest before sending.
type blogBody struct {
	Slug     string `json:"slug" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
}

func (b blogBody) input() model.BlogPostInput {
	return model.BlogPostInput{
		Slug: b.Slug, Title: b.Title, Excerpt: b.Excerpt, Content: b.Content,
		Author: b.Author, Category: b.Category, Image: b.Image, ReadTime: b.ReadTime,
	}
}

// @Summary  List blog posts
// @Tags     blog
// @Produce  json
// @Success  200 {array} model.BlogPost
// @Router   /api/blog [get]
// @Router   /api/admin/blog [get]
func ListBlogPosts(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(nonNil(posts))
	}
}

// @Summary  Get a blog post
// @Tags     blog
// @Produce  json
// @Param    slug path     string true "Post slug"
// @Success  200  {object} model.BlogPost
// @Failure  404  {object} model.ErrorBody
// @Router   /api/blog/{slug} [get]
func GetBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := svc.Get(c.UserContext(), c.Params("slug"))
		if err != nil {
			return blogError(c, err)
		}
		return c.JSON(post)
	}
}

// @Summary   Create a blog post
// @Tags      blog
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body     blogBody true "Post"
// @Success   200  {object} model.BlogPost
// @Failure   400  {object} model.ErrorBody
// @Failure   422  {object} validationBody
// @Router    /api/admin/blog [post]
func CreateBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body blogBody
		if ok, err := bindBody(c, &body); !ok {
			return err
		}
		post, err := svc.Create(c.UserContext(), body.input())
		if err != nil {
			return blogError(c, err)
		}
		return c.JSON(post)
	}
}

// UpdateBlogPost replaces the post under :slug. An empty slug in the body keeps the
// current one, so the title is the only field the body must carry.
//
// @Summary   Replace a blog post
// @Tags      blog
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     slug path     string   true "Current slug"
// @Param     body body     blogBody true "Post"
// @Success   200  {object} model.BlogPost
// @Failure   400  {object} model.ErrorBody
// @Failure   404  {object} model.ErrorBody
// @Router    /api/admin/blog/{slug} [put]
func UpdateBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body blogBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		if body.Slug == "" {
			body.Slug = c.Params("slug")
		}
		if ok, err := validated(c, body); !ok {
			return err
		}
		post, err := svc.Update(c.UserContext(), c.Params("slug"), body.input())
		if err != nil {
			return blogError(c, err)
		}
		return c.JSON(post)
	}
}

// @Summary   Delete a blog post
// @Tags      blog
// @Produce   json
// @Security  BearerAuth
// @Param     slug path     string true "Post slug"
// @Success   200  {object} model.Message
// @Failure   404  {object} model.ErrorBody
// @Router    /api/admin/blog/{slug} [delete]
func DeleteBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("slug")); err != nil {
			return blogError(c, err)
		}
		return c.JSON(model.Message{Message: "Blog post deleted successfully"})
	}
}

func blogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "Blog post not found")
	case errors.Is(err, service.ErrSlugTaken):
		return writeError(c, fiber.StatusBadRequest, "A post with this slug already exists")
	default:
		return err
	}
}
