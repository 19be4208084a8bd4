package service

import (
	"context"
	"sort"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
)

// RecentLimit is how many of the newest contacts and applications the dashboard shows.
const RecentLimit = 5

// StatsService aggregates the admin dashboard overview.
type StatsService interface {
	Stats(ctx context.Context) (model.Stats, error)
}

type statsService struct {
	contacts     repository.ContactRepository
	applications repository.ApplicationRepository
	posts        repository.BlogRepository
	files        repository.FileRepository
}

func NewStatsService(contacts repository.ContactRepository, applications repository.ApplicationRepository,
	posts repository.BlogRepository, files repository.FileRepository) StatsService {
	return &statsService{contacts: contacts, applications: applications, posts: posts, files: files}
}

func (s *statsService) Stats(ctx context.Context) (model.Stats, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	apps, err := s.applications.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	files, err := s.files.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}

	out := model.Stats{
		Contacts:     model.StatusCount{Total: len(contacts)},
		Applications: model.StatusCount{Total: len(apps)},
		BlogPosts:    len(posts),
		Files:        len(files),
	}
	for _, c := range contacts {
		if c.Status == model.ContactPending {
			out.Contacts.Pending++
		}
	}
	for _, a := range apps {
		if a.Status == model.ApplicationPending {
			out.Applications.Pending++
		}
	}

	// RFC 3339 timestamps in UTC sort lexically.
	sort.SliceStable(contacts, func(i, j int) bool { return contacts[i].CreatedAt > contacts[j].CreatedAt })
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].CreatedAt > apps[j].CreatedAt })
	out.RecentContacts = contacts[:min(RecentLimit, len(contacts))]
	out.RecentApplications = apps[:min(RecentLimit, len(apps))]
	return out, nil
}
