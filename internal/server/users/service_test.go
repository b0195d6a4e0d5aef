package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey:  "k",
		BCryptCost: bcrypt.MinCost, // keep tests fast
	}
	return NewService(repo, cfg)
}

type fakeRepo struct {
	created []*models.User

	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeRepo{getErr: common.ErrorNotFound}
	s := newService(t, repo)

	u, err := s.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated user ID")
	}
	if u.UserName != "alice" {
		t.Fatalf("unexpected username: %q", u.UserName)
	}
	if u.PasswordHash == "pw1" || u.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", u.PasswordHash)
	}
	if !auth.CheckPassword("pw1", u.PasswordHash) {
		t.Fatalf("stored hash does not verify")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestRegister_Duplicate(t *testing.T) {
	repo := &fakeRepo{getOut: &models.User{ID: "u-1", UserName: "alice"}}
	s := newService(t, repo)

	_, err := s.Register(context.Background(), "alice", "pw1")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no insert expected on duplicate")
	}
}

func TestRegister_LookupFailure(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("db down")}
	s := newService(t, repo)

	_, err := s.Register(context.Background(), "alice", "pw1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

// --- Login ---

func loginFake(t *testing.T, password string) *fakeRepo {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &fakeRepo{getOut: &models.User{ID: "u-1", UserName: "alice", PasswordHash: hash}}
}

func TestLogin_Success_TokenMapsBackToIdentity(t *testing.T) {
	s := newService(t, loginFake(t, "pw1"))

	token, err := s.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("token identity = %q, want u-1", userID)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	s := newService(t, &fakeRepo{getErr: common.ErrorNotFound})

	_, err := s.Login(context.Background(), "ghost", "pw1")
	if !errors.Is(err, common.ErrorUserNotFound) {
		t.Fatalf("want ErrorUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newService(t, loginFake(t, "pw1"))

	_, err := s.Login(context.Background(), "alice", "pw2")
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_LookupFailure(t *testing.T) {
	s := newService(t, &fakeRepo{getErr: errors.New("db down")})

	_, err := s.Login(context.Background(), "alice", "pw1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}
