package courserepo

import (
	"context"
	"errors"

	"coursecat/model"
	"coursecat/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	List(ctx context.Context) ([]model.Course, error)
	ByID(ctx context.Context, id int64) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

// Read projections exclude timestamps and the owner's password hash.
const courseCols = `
	c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
	u.id, u.first_name, u.last_name, u.email_address`

func (r *repo) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+courseCols+`
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Course, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT `+courseCols+`
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`, id)

	c, err := scanCourse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Create(ctx context.Context, c *model.Course) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO courses(title, description, estimated_time, materials_needed, user_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.UserID,
	).Scan(&c.ID)
}

func (r *repo) Update(ctx context.Context, c *model.Course) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE courses
		SET title=$1, description=$2, estimated_time=$3, materials_needed=$4, updated_at=now()
		WHERE id=$5`,
		c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.ID,
	)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	return err
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	c := &model.Course{User: &model.User{}}
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.EstimatedTime, &c.MaterialsNeeded, &c.UserID,
		&c.User.ID, &c.User.FirstName, &c.User.LastName, &c.User.EmailAddress,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
