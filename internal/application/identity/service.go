package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/Evanshango/chatty-backend/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

// Service owns credentials. It creates accounts, checks passwords and issues
// bearer tokens; profile data lives in the user service.
type Service interface {
	CreateAccount(ctx context.Context, email, password, handle string) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	Token(a *domain.Account) (string, error)
	DeleteAccount(ctx context.Context, email string) error
}

type accountStore interface {
	Create(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, email string) (*domain.Account, error)
	Delete(ctx context.Context, email string) error
}

type jwtSigner interface {
	Sign(userID, handle, email string) (string, error)
}

type service struct {
	accounts    accountStore
	jwtProvider jwtSigner
	hashCost    int
}

type ServiceDeps struct {
	AccountRepo accountStore
	JWTProvider jwtSigner
	// HashCost defaults to bcrypt.DefaultCost.
	HashCost int
}

func NewService(deps ServiceDeps) Service {
	cost := deps.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &service{
		accounts:    deps.AccountRepo,
		jwtProvider: deps.JWTProvider,
		hashCost:    cost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) CreateAccount(ctx context.Context, email, password, handle string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &domain.Account{
		Email:        normalizeEmail(email),
		UserID:       id.New(),
		Handle:       handle,
		PasswordHash: string(hash),
		CreatedAt:    domain.Now(),
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	a, err := s.accounts.Get(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("wrong credentials: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong credentials: %w", domain.ErrUnauthorized)
	}
	return a, nil
}

func (s *service) Token(a *domain.Account) (string, error) {
	if s.jwtProvider == nil {
		return "", errors.New("identity: no token signer configured")
	}
	return s.jwtProvider.Sign(a.UserID, a.Handle, a.Email)
}

func (s *service) DeleteAccount(ctx context.Context, email string) error {
	return s.accounts.Delete(ctx, normalizeEmail(email))
}
