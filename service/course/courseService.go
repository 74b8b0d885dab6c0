package coursesvc

import (
	"context"
	"errors"

	"coursecat/model"
	courserepo "coursecat/repository/course"
)

var (
	ErrNotFound = errors.New("course not found")
	ErrNotOwner = errors.New("course owned by another user")
)

type Repo = courserepo.Repo

type Service interface {
	List(ctx context.Context) ([]model.Course, error)
	Detail(ctx context.Context, id int64) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) (int64, error)
	Update(ctx context.Context, c *model.Course, requesterID int64) error
	Delete(ctx context.Context, id, requesterID int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Course, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Course, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, c *model.Course) (int64, error) {
	if err := s.r.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// Update checks existence before ownership: a missing course is 404 territory,
// never an ownership failure.
func (s *service) Update(ctx context.Context, c *model.Course, requesterID int64) error {
	existing, err := s.r.ByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != requesterID {
		return ErrNotOwner
	}
	return s.r.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, id, requesterID int64) error {
	existing, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != requesterID {
		return ErrNotOwner
	}
	return s.r.Delete(ctx, id)
}
