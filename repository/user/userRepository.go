package userrepo

import (
	"context"
	"errors"

	"coursecat/model"
	"coursecat/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO users(first_name, last_name, email_address, password_hash)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		u.FirstName, u.LastName, u.EmailAddress, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
}

// ByEmail is an exact-match lookup; emails are compared case-sensitively.
func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
        SELECT id, first_name, last_name, email_address, password_hash
        FROM users
        WHERE email_address = $1`,
		email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
