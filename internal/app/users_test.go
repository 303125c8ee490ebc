package app_test

import (
	"context"
	"errors"
	"testing"

	"wunderwohn/internal/app"
	"wunderwohn/internal/domain"
)

type fakeUserRepo struct {
	users map[string]domain.User // keyed by id
}

func (f *fakeUserRepo) Insert(ctx context.Context, u domain.User) error {
	if f.users == nil {
		f.users = map[string]domain.User{}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// plaintext "hasher" keeps assertions readable
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }
func (fakeHasher) Compare(hash, plain string) bool   { return hash == "hash:"+plain }

type fakeTokens struct{}

func (fakeTokens) Issue(u domain.User) (string, error) { return "token-for-" + u.ID, nil }

func newUserService(repo *fakeUserRepo) *app.UserService {
	return app.NewUserService(repo, fakeHasher{}, fakeTokens{})
}

func TestRegister_CreatesGuestWithToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newUserService(repo)

	res, err := svc.Register(context.Background(), app.RegisterInput{
		Email:     "anna@example.com",
		FirstName: "Anna",
		LastName:  "Schmidt",
		Password:  "s3cret",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.User.Role != domain.RoleGuest {
		t.Fatalf("registration must never grant admin, got %s", res.User.Role)
	}
	if res.User.PasswordHash != "hash:s3cret" {
		t.Fatalf("password not hashed: %q", res.User.PasswordHash)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newUserService(repo)

	in := app.RegisterInput{Email: "anna@example.com", Password: "pw"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), app.RegisterInput{Email: "anna@example.com", Password: "pw"}); err != nil {
		t.Fatalf("err: %v", err)
	}

	res, err := svc.Login(context.Background(), "anna@example.com", "pw")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}

	if _, err := svc.Login(context.Background(), "anna@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// unknown account maps to the same error as a wrong password
	if _, err := svc.Login(context.Background(), "nobody@example.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
