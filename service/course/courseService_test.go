// service/course/course_service_test.go
package coursesvc_test

import (
	"context"
	"errors"
	"testing"

	"coursecat/model"
	coursesvc "coursecat/service/course"
)

type repoMock struct {
	listFn   func(ctx context.Context) ([]model.Course, error)
	byIDFn   func(ctx context.Context, id int64) (*model.Course, error)
	createFn func(ctx context.Context, c *model.Course) error
	updateFn func(ctx context.Context, c *model.Course) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *repoMock) List(ctx context.Context) ([]model.Course, error) { return m.listFn(ctx) }
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Course, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, c *model.Course) error { return m.createFn(ctx, c) }
func (m *repoMock) Update(ctx context.Context, c *model.Course) error { return m.updateFn(ctx, c) }
func (m *repoMock) Delete(ctx context.Context, id int64) error        { return m.deleteFn(ctx, id) }

func TestCreate_AssignsID(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Course) error {
			if c.Title != "Go" || c.UserID != 7 {
				return errors.New("bad args")
			}
			c.ID = 42
			return nil
		},
	}
	s := coursesvc.New(m)
	id, err := s.Create(context.Background(), &model.Course{Title: "Go", Description: "d", UserID: 7})
	if err != nil || id != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", id, err)
	}
}

func TestUpdate_MissingCourse(t *testing.T) {
	updated := false
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id int64) (*model.Course, error) { return nil, nil },
		updateFn: func(ctx context.Context, c *model.Course) error { updated = true; return nil },
	}
	s := coursesvc.New(m)

	err := s.Update(context.Background(), &model.Course{ID: 99, Title: "t", Description: "d"}, 7)
	if !errors.Is(err, coursesvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
	if updated {
		t.Fatal("update must not run for a missing course")
	}
}

func TestUpdate_NotOwner(t *testing.T) {
	updated := false
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Course, error) {
			return &model.Course{ID: id, UserID: 1}, nil
		},
		updateFn: func(ctx context.Context, c *model.Course) error { updated = true; return nil },
	}
	s := coursesvc.New(m)

	err := s.Update(context.Background(), &model.Course{ID: 5, Title: "t", Description: "d"}, 2)
	if !errors.Is(err, coursesvc.ErrNotOwner) {
		t.Fatalf("got %v; want ErrNotOwner", err)
	}
	if updated {
		t.Fatal("update must not run for a non-owner")
	}
}

func TestUpdate_Owner(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Course, error) {
			return &model.Course{ID: id, UserID: 2}, nil
		},
		updateFn: func(ctx context.Context, c *model.Course) error { return nil },
	}
	s := coursesvc.New(m)

	if err := s.Update(context.Background(), &model.Course{ID: 5, Title: "t", Description: "d"}, 2); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestDelete_MissingBeforeOwnership(t *testing.T) {
	deleted := false
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id int64) (*model.Course, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id int64) error { deleted = true; return nil },
	}
	s := coursesvc.New(m)

	err := s.Delete(context.Background(), 404, 1)
	if !errors.Is(err, coursesvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
	if deleted {
		t.Fatal("delete must not run for a missing course")
	}
}

func TestDelete_NotOwner(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Course, error) {
			return &model.Course{ID: id, UserID: 1}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := coursesvc.New(m)

	if err := s.Delete(context.Background(), 5, 9); !errors.Is(err, coursesvc.ErrNotOwner) {
		t.Fatalf("got %v; want ErrNotOwner", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Course, error) { return nil, nil },
		byIDFn: func(ctx context.Context, id int64) (*model.Course, error) {
			return &model.Course{ID: id}, nil
		},
	}
	s := coursesvc.New(m)

	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := s.Detail(context.Background(), 99); err != nil {
		t.Fatalf("Detail error: %v", err)
	}
}
