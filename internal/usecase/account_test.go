package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/validation"
)

func TestAccountRegister(t *testing.T) {
	repo := &mockArtistRepo{byEmail: map[string]domain.Artist{}}
	uc := NewAccountUsecase(repo, mockIssuer{}, bcrypt.MinCost)

	input := validation.RegisterInput{
		Email:    "ava@example.com",
		Password: "password",
		Name:     "Ava",
		Type:     ptr("LISTENER"),
	}
	artist, err := uc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if artist.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created artist, got %d", len(repo.created))
	}
	created := repo.created[0]
	if created.PasswordHash == input.Password {
		t.Fatalf("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password")); err != nil {
		t.Fatalf("stored hash does not match: %v", err)
	}
	if created.Type != domain.AccountListener {
		t.Fatalf("expected LISTENER got %s", created.Type)
	}
}

func TestAccountRegisterConflict(t *testing.T) {
	repo := &mockArtistRepo{byEmail: map[string]domain.Artist{"ava@example.com": {ID: "a1"}}}
	uc := NewAccountUsecase(repo, mockIssuer{}, bcrypt.MinCost)

	_, err := uc.Register(context.Background(), validation.RegisterInput{Email: "ava@example.com", Password: "password", Name: "Ava"})
	var conflict domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("conflicting account must not be created")
	}
}

func TestAccountLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	repo := &mockArtistRepo{byEmail: map[string]domain.Artist{
		"ava@example.com": {ID: "a1", Name: "Ava", PasswordHash: string(hash)},
	}}
	uc := NewAccountUsecase(repo, mockIssuer{}, bcrypt.MinCost)
	ctx := context.Background()

	token, err := uc.Login(ctx, validation.LoginInput{Email: "ava@example.com", Password: "password"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "token-for-a1" {
		t.Fatalf("unexpected token %q", token)
	}

	_, err = uc.Login(ctx, validation.LoginInput{Email: "ava@example.com", Password: "wrongpass"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if err.Error() != "Invalid password" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	_, err = uc.Login(ctx, validation.LoginInput{Email: "nobody@example.com", Password: "password"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "User with this email doesn't exist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAccountLoginRepositoryFailure(t *testing.T) {
	boom := errors.New("connection refused")
	uc := NewAccountUsecase(&mockArtistRepo{err: boom}, mockIssuer{}, bcrypt.MinCost)

	_, err := uc.Login(context.Background(), validation.LoginInput{Email: "ava@example.com", Password: "password"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
