package usersvc

import (
	"context"
	"errors"
	"strings"

	"coursecat/model"
	userrepo "coursecat/repository/user"
	"coursecat/util/hash"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken   = errors.New("email address already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidCreds = errors.New("authentication failed")
)

type Service interface {
	SignUp(ctx context.Context, req model.SignUpReq) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur} }

func (s *service) SignUp(ctx context.Context, req model.SignUpReq) (*model.User, error) {
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		PasswordHash: hashed,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return u, nil
}

// Authenticate resolves Basic-auth credentials to a user. The lookup is
// indexed by email address rather than a scan over the whole user table.
func (s *service) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !hash.Check(u.PasswordHash, password) {
		return nil, ErrInvalidCreds
	}
	return u, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "users_email") || strings.Contains(msg, "email") {
			return ErrEmailTaken
		}
	}
	return nil
}
