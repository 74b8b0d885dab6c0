// service/user/user_service_test.go
package usersvc

import (
	"context"
	"errors"
	"testing"

	"coursecat/model"
	userrepo "coursecat/repository/user"
	"coursecat/util/hash"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestSignUp_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m)

	req := model.SignUpReq{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}

	u, err := svc.SignUp(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "joe@smith.com", u.EmailAddress)
	require.NotEqual(t, "joepassword", u.PasswordHash)
	require.True(t, hash.Check(u.PasswordHash, "joepassword"))
}

func TestSignUp_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_address_key",
			}
		},
	}
	svc := New(m)

	_, err := svc.SignUp(ctx, model.SignUpReq{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "taken@example.com",
		Password:     "joepassword",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUp_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m)

	_, err := svc.SignUp(ctx, model.SignUpReq{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "ok@example.com",
		Password:     "joepassword",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			require.Equal(t, "user@example.com", email)
			return &model.User{
				ID:           7,
				EmailAddress: "user@example.com",
				PasswordHash: hashed,
			}, nil
		},
	}
	svc := New(m)

	u, err := svc.Authenticate(ctx, "user@example.com", pw)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(7), u.ID)
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, nil
		},
	}
	svc := New(m)

	_, err := svc.Authenticate(ctx, "missing@example.com", "whatever")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           101,
				EmailAddress: "user@example.com",
				PasswordHash: hashed,
			}, nil
		},
	}
	svc := New(m)

	_, err := svc.Authenticate(ctx, "user@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestAuthenticate_RepoError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := New(m)

	_, err := svc.Authenticate(ctx, "user@example.com", "pw")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUserNotFound)
	require.NotErrorIs(t, err, ErrInvalidCreds)
}
