package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
)

// BlogService manages posts addressed by slug.
type BlogService interface {
	List(ctx context.Context) ([]model.BlogPost, error)
	Get(ctx context.Context, slug string) (model.BlogPost, error)
	Create(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error)
	// Update replaces the editable fields of the post under slug; in.Slug renames it.
	Update(ctx context.Context, slug string, in model.BlogPostInput) (model.BlogPost, error)
	Delete(ctx context.Context, slug string) error
}

type blogService struct {
	repo repository.BlogRepository
	now  func() time.Time
}

func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{repo: repo, now: time.Now}
}

func (s *blogService) List(ctx context.Context) ([]model.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *blogService) Get(ctx context.Context, slug string) (model.BlogPost, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	return p, mapNotFound(err)
}

func (s *blogService) Create(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error) {
	p := apply(model.BlogPost{
		ID:   uuid.NewString(),
		Date: s.now().UTC().Format("2006-01-02"),
	}, in)
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.BlogPost{}, ErrSlugTaken
		}
		return model.BlogPost{}, err
	}
	return p, nil
}

func (s *blogService) Update(ctx context.Context, slug string, in model.BlogPostInput) (model.BlogPost, error) {
	cur, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return model.BlogPost{}, mapNotFound(err)
	}
	if in.Slug == "" {
		in.Slug = slug
	}
	p := apply(cur, in)
	if err := s.repo.Replace(ctx, slug, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.BlogPost{}, ErrSlugTaken
		}
		return model.BlogPost{}, mapNotFound(err)
	}
	return p, nil
}

func (s *blogService) Delete(ctx context.Context, slug string) error {
	return mapNotFound(s.repo.Delete(ctx, slug))
}

// apply copies the editable fields of in onto p, filling the backend defaults.
func apply(p model.BlogPost, in model.BlogPostInput) model.BlogPost {
	p.Slug = in.Slug
	p.Title = in.Title
	p.Excerpt = in.Excerpt
	p.Content = in.Content
	p.Category = in.Category
	p.Image = in.Image
	p.Author = in.Author
	if p.Author == "" {
		p.Author = model.DefaultBlogAuthor
	}
	p.ReadTime = in.ReadTime
	if p.ReadTime == "" {
		p.ReadTime = model.DefaultBlogReadTime
	}
	return p
}
