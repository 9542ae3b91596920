package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gotodo/backend/internal/config"
	"github.com/gotodo/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	if _, ok := f.users[email]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	user := &model.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	f.users[email] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTL: "1h"}
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	if _, err := NewAuthService(newFakeUserStore(), config.AuthConfig{TokenTTL: "1h"}); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := NewAuthService(newFakeUserStore(), config.AuthConfig{JWTSecret: "s", TokenTTL: "bogus"}); err == nil {
		t.Fatal("expected error for invalid TTL")
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, err := NewAuthService(newFakeUserStore(), testAuthConfig())
	if err != nil {
		t.Fatal(err)
	}

	user, err := svc.Register(context.Background(), "al", "al@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if user.PasswordHash == "pw" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("hash does not verify original password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("other")); err == nil {
		t.Fatal("hash verified a different password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := NewAuthService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "al", "al@x.com", "pw"); err != nil {
		t.Fatal(err)
	}
	// Same email, different username: still a duplicate.
	if _, err := svc.Register(ctx, "bob", "al@x.com", "pw2"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLoginErrorsAreDistinct(t *testing.T) {
	svc, _ := NewAuthService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "al", "al@x.com", "pw"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(ctx, "nobody@x.com", "pw"); !errors.Is(err, ErrUnknownEmail) {
		t.Fatalf("expected ErrUnknownEmail, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "al@x.com", "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestLoginTokenRoundTrip(t *testing.T) {
	svc, _ := NewAuthService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "al", "al@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	user, token, err := svc.Login(ctx, "al@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned wrong user: %d", user.ID)
	}

	authUser, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if authUser.ID != registered.ID || authUser.Email != "al@x.com" {
		t.Fatalf("unexpected identity: %+v", authUser)
	}
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc, _ := NewAuthService(newFakeUserStore(), testAuthConfig())
	if _, err := svc.ParseAccessToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	store := newFakeUserStore()
	expired, _ := NewAuthService(store, config.AuthConfig{JWTSecret: "test-secret", TokenTTL: "-1m"})
	ctx := context.Background()

	if _, err := expired.Register(ctx, "al", "al@x.com", "pw"); err != nil {
		t.Fatal(err)
	}
	_, token, err := expired.Login(ctx, "al@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := expired.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseAccessTokenRejectsForeignSecret(t *testing.T) {
	store := newFakeUserStore()
	a, _ := NewAuthService(store, config.AuthConfig{JWTSecret: "secret-a", TokenTTL: "1h"})
	b, _ := NewAuthService(store, config.AuthConfig{JWTSecret: "secret-b", TokenTTL: "1h"})
	ctx := context.Background()

	if _, err := a.Register(ctx, "al", "al@x.com", "pw"); err != nil {
		t.Fatal(err)
	}
	_, token, err := a.Login(ctx, "al@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken across secrets, got %v", err)
	}
}
