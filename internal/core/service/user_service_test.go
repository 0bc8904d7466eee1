package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/guitarworld/guitar-store/internal/core/domain"
)

// stubUserRepo is an in-memory, insertion-ordered user store.
type stubUserRepo struct {
	users  []domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return append([]domain.User{}, r.users...), nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	created := *user
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.nextID++
	r.users = append(r.users, created)
	clone := created
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Search(_ context.Context, key string, value any) ([]domain.User, error) {
	matches := []domain.User{}
	for _, u := range r.users {
		if key == "username" && u.Username == value {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

// stubGuitarRepo is an in-memory, insertion-ordered guitar store.
type stubGuitarRepo struct {
	guitars []domain.Guitar
	nextID  int
}

func newStubGuitarRepo(seed ...domain.Guitar) *stubGuitarRepo {
	return &stubGuitarRepo{guitars: seed, nextID: len(seed) + 1}
}

func (r *stubGuitarRepo) List(_ context.Context) ([]domain.Guitar, error) {
	return append([]domain.Guitar{}, r.guitars...), nil
}

func (r *stubGuitarRepo) GetByID(_ context.Context, id string) (*domain.Guitar, error) {
	for _, g := range r.guitars {
		if g.ID == id {
			clone := g
			return &clone, nil
		}
	}
	return nil, domain.ErrGuitarNotFound
}

func (r *stubGuitarRepo) Create(_ context.Context, guitar *domain.Guitar) (*domain.Guitar, error) {
	created := *guitar
	created.ID = fmt.Sprintf("g%d", r.nextID)
	r.nextID++
	r.guitars = append(r.guitars, created)
	clone := created
	return &clone, nil
}

func (r *stubGuitarRepo) Update(_ context.Context, guitar *domain.Guitar) (*domain.Guitar, error) {
	for i, g := range r.guitars {
		if g.ID == guitar.ID {
			r.guitars[i] = *guitar
			clone := *guitar
			return &clone, nil
		}
	}
	return nil, domain.ErrGuitarNotFound
}

func (r *stubGuitarRepo) Delete(_ context.Context, id string) error {
	for i, g := range r.guitars {
		if g.ID == id {
			r.guitars = append(r.guitars[:i], r.guitars[i+1:]...)
			return nil
		}
	}
	return domain.ErrGuitarNotFound
}

func (r *stubGuitarRepo) Search(_ context.Context, key string, value any) ([]domain.Guitar, error) {
	matches := []domain.Guitar{}
	for _, g := range r.guitars {
		if key == "style" && string(g.Style) == value {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

func newUserService(guitars *stubGuitarRepo) (*UserService, *stubUserRepo) {
	users := newStubUserRepo()
	creds := NewCredentialService("secret")
	svc := NewUserService(users, guitars, creds, zerolog.Nop())
	return svc, users
}

func TestUserService_Register_Validation(t *testing.T) {
	svc, users := newUserService(newStubGuitarRepo())

	if _, err := svc.Register(context.Background(), "", "pass", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(users.users) != 0 {
		t.Fatalf("expected no records created, got %d", len(users.users))
	}
}

func TestUserService_Register_Success(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	user, err := svc.Register(context.Background(), "alice", "pass123", "alice@example.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" || user.PasswordHash == "" {
		t.Fatalf("expected password to be stored as a hash")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if len(user.MyGuitars) != 0 {
		t.Fatalf("expected empty guitar collection, got %d", len(user.MyGuitars))
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	if _, err := svc.Register(context.Background(), "bob", "pass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Login_RoundTrip(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	if _, err := svc.Register(context.Background(), "carol", "s3cret", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.User.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, res.User.Role)
	}

	claims, err := NewCredentialService("secret").VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims.ID != res.User.ID || claims.Username != "carol" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "")
	if _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_Validation(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_AddGuitar(t *testing.T) {
	guitars := newStubGuitarRepo(domain.Guitar{ID: "g1", Brand: "Fender", Style: domain.StyleElectric})
	svc, _ := newUserService(guitars)

	user, err := svc.Register(context.Background(), "erin", "pass", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.AddGuitar(context.Background(), user.ID, "g1")
	if err != nil {
		t.Fatalf("AddGuitar returned error: %v", err)
	}
	if len(updated.MyGuitars) != 1 || updated.MyGuitars[0].ID != "g1" {
		t.Fatalf("unexpected collection: %+v", updated.MyGuitars)
	}
}

func TestUserService_AddGuitar_Duplicate(t *testing.T) {
	guitars := newStubGuitarRepo(domain.Guitar{ID: "g1", Brand: "Fender", Style: domain.StyleElectric})
	svc, _ := newUserService(guitars)

	user, _ := svc.Register(context.Background(), "frank", "pass", "")
	if _, err := svc.AddGuitar(context.Background(), user.ID, "g1"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := svc.AddGuitar(context.Background(), user.ID, "g1"); err != domain.ErrAlreadyOwned {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
}

func TestUserService_AddGuitar_UnknownGuitar(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	user, _ := svc.Register(context.Background(), "gina", "pass", "")
	if _, err := svc.AddGuitar(context.Background(), user.ID, "missing"); err != domain.ErrGuitarNotFound {
		t.Fatalf("expected ErrGuitarNotFound, got %v", err)
	}
}

func TestUserService_RemoveGuitar_Idempotent(t *testing.T) {
	guitars := newStubGuitarRepo(domain.Guitar{ID: "g1", Brand: "Fender", Style: domain.StyleElectric})
	svc, _ := newUserService(guitars)

	user, _ := svc.Register(context.Background(), "hank", "pass", "")
	if _, err := svc.AddGuitar(context.Background(), user.ID, "g1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	first, err := svc.RemoveGuitar(context.Background(), user.ID, "g1")
	if err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	if len(first.MyGuitars) != 0 {
		t.Fatalf("expected empty collection after remove, got %+v", first.MyGuitars)
	}

	// Second remove of the same guitar must also succeed, unchanged.
	second, err := svc.RemoveGuitar(context.Background(), user.ID, "g1")
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if len(second.MyGuitars) != 0 {
		t.Fatalf("expected unchanged empty collection, got %+v", second.MyGuitars)
	}
}

func TestUserService_Profile(t *testing.T) {
	svc, _ := newUserService(newStubGuitarRepo())

	user, _ := svc.Register(context.Background(), "ivy", "pass", "ivy@example.com")

	profile, err := svc.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Username != "ivy" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
