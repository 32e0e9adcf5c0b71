package auth

import (
	"context"
	"errors"
	"testing"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

type stubRepo struct {
	users map[uuid.UUID]user.User
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *stubRepo) CreateUser(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *stubRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *stubRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *stubRepo) UpdateProfile(_ context.Context, u user.User) (user.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *stubRepo) ListUsers(context.Context, user.ListFilter) ([]user.User, error) {
	return nil, nil
}

func (r *stubRepo) GetUsersByIDs(context.Context, []uuid.UUID) ([]user.User, error) {
	return nil, nil
}

func (r *stubRepo) UpdatePair(context.Context, uuid.UUID, uuid.UUID, func(a, b *user.User) error) error {
	return nil
}

func validRegister() RegisterInput {
	return RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "correct horse",
		Role:     "mentee",
		Skills:   []string{" go ", "", "sql"},
	}
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	got, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", got.Email)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
	if len(got.Skills) != 2 || got.Skills[0] != "go" || got.Skills[1] != "sql" {
		t.Fatalf("skills not normalized: %v", got.Skills)
	}

	stored := repo.users[got.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "correct horse" {
		t.Fatalf("stored password must be hashed")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := svc.Register(context.Background(), validRegister())
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(newStubRepo())

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty name", func(in *RegisterInput) { in.Name = "  " }},
		{"empty email", func(in *RegisterInput) { in.Email = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "hunter2" }},
		{"whitespace password", func(in *RegisterInput) { in.Password = "        " }},
		{"bad role", func(in *RegisterInput) { in.Role = "admin" }},
	}
	for _, tc := range cases {
		in := validRegister()
		tc.mutate(&in)
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := svc.Login(context.Background(), LoginInput{Email: "ADA@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Fatalf("unexpected login result: %+v", got)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong horse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newStubRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
