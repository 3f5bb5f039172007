package usecase

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/validation"
)

var (
	errEmailTaken   = domain.ConflictError{Message: "Email is already registered"}
	errUnknownEmail = domain.NotFoundError{Resource: "User", Message: "User with this email doesn't exist"}
	errBadPassword  = domain.AuthError{Message: "Invalid password"}
)

type AccountUsecase struct {
	artists ArtistRepository
	tokens  TokenIssuer
	cost    int
}

func NewAccountUsecase(artists ArtistRepository, tokens TokenIssuer, bcryptCost int) *AccountUsecase {
	return &AccountUsecase{
		artists: artists,
		tokens:  tokens,
		cost:    bcryptCost,
	}
}

// Register creates an account from a validated registration payload.
func (uc *AccountUsecase) Register(ctx context.Context, input validation.RegisterInput) (domain.Artist, error) {
	_, err := uc.artists.FindByEmail(ctx, input.Email)
	if err == nil {
		return domain.Artist{}, errEmailTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Artist{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		verr := &domain.ValidationError{}
		verr.Add("password", "Password must be at most 72 bytes")
		return domain.Artist{}, verr
	}
	if err != nil {
		return domain.Artist{}, errors.Wrap(err, "hash password")
	}

	artist := domain.Artist{
		Email:           input.Email,
		PasswordHash:    string(hash),
		Name:            input.Name,
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
	}
	if input.Gender != nil {
		artist.Gender = domain.Gender(*input.Gender)
	}
	if input.Type != nil {
		artist.Type = domain.AccountType(*input.Type)
	}

	return uc.artists.Create(ctx, artist)
}

// Login checks the credentials and returns a signed access token.
func (uc *AccountUsecase) Login(ctx context.Context, input validation.LoginInput) (string, error) {
	artist, err := uc.artists.FindByEmail(ctx, input.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", errUnknownEmail
	}
	if err != nil {
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(artist.PasswordHash), []byte(input.Password))
	if err != nil {
		return "", errBadPassword
	}

	token, err := uc.tokens.Issue(artist.Name, artist.ID)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}
	return token, nil
}

// Profile returns the principal's own account with its albums and tracks.
func (uc *AccountUsecase) Profile(ctx context.Context, principal domain.Principal) (domain.Artist, error) {
	return uc.artists.GetProfile(ctx, principal.UserID)
}
