package user

import (
	"context"
	"strings"
	"time"

	"github.com/thirteen-hero/myCats-server/internal/token"
	"github.com/thirteen-hero/myCats-server/internal/user/entity"
)

// Service orchestrates registration, login and token validation. It holds no
// mutable state of its own; every call is independent.
type Service struct {
	repo   Repository
	hasher PasswordHasher
	tokens *token.Issuer
}

func NewService(repo Repository, hasher PasswordHasher, tokens *token.Issuer) *Service {
	if hasher == nil {
		hasher = BcryptHasher{Cost: 10}
	}
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register validates the input, checks username uniqueness, hashes the
// password and persists the user. Nothing is persisted when validation or the
// uniqueness check fails.
//
// The lookup and the insert are not atomic: two concurrent registrations with
// the same username can both pass the lookup. The unique index on username is
// what resolves that race at the storage layer.
func (s *Service) Register(ctx context.Context, username, password, confirmPassword, email string) (entity.PublicUser, error) {
	if errs := ValidateRegisterInput(username, password, confirmPassword, email); len(errs) > 0 {
		return entity.PublicUser{}, &ValidationError{Fields: errs}
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return entity.PublicUser{}, ErrDuplicateUsername
	} else if err != ErrUserNotFound {
		return entity.PublicUser{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return entity.PublicUser{}, err
	}
	now := time.Now().UTC()
	u := &entity.User{
		Username:  username,
		Password:  hash,
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return entity.PublicUser{}, err
	}
	return u.Public(), nil
}

// Login authenticates a username/password pair and returns a signed bearer
// token. Unknown users and wrong passwords yield the same error so callers
// cannot tell which case occurred.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == ErrUserNotFound {
			return "", ErrBadCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(u.Password, password) {
		return "", ErrBadCredentials
	}
	return s.tokens.Issue(u.ID.Hex())
}

// ValidateToken resolves the user behind an Authorization header. The four
// failure modes (missing header, missing token, invalid token, user gone) are
// distinct errors internally; the handler surfaces them all as 401.
func (s *Service) ValidateToken(ctx context.Context, authorization string) (entity.PublicUser, error) {
	if authorization == "" {
		return entity.PublicUser{}, ErrMissingHeader
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return entity.PublicUser{}, ErrMissingToken
	}

	id, err := s.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return entity.PublicUser{}, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return entity.PublicUser{}, err
	}
	return u.Public(), nil
}
