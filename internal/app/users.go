package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"wunderwohn/internal/domain"
)

type UserService struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
	tokens domain.TokenIssuer
}

func NewUserService(u domain.UserRepository, h domain.PasswordHasher, t domain.TokenIssuer) *UserService {
	return &UserService{users: u, hasher: h, tokens: t}
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type AuthResult struct {
	User  domain.User
	Token string
}

// Register creates a guest account. Admin accounts are only provisioned by
// the seeder, never through registration.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	_, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return AuthResult{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return AuthResult{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, err
	}
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Role:         domain.RoleGuest,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return AuthResult{}, err
	}
	log.Info().Str("user", u.ID).Msg("user registered")
	return s.withToken(u)
}

func (s *UserService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return AuthResult{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		return AuthResult{}, domain.ErrInvalidCredentials
	}
	return s.withToken(u)
}

func (s *UserService) withToken(u domain.User) (AuthResult, error) {
	tok, err := s.tokens.Issue(u)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: u, Token: tok}, nil
}
