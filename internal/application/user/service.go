package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/Evanshango/chatty-backend/internal/pkg/callctx"
)

// recentNotifications is how many notifications the own-profile view carries.
const recentNotifications = 10

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (string, error)
	SignIn(ctx context.Context, req domain.SignInRequest) (string, error)
	UpdateDetails(ctx context.Context, handle string, req domain.UpdateDetailsRequest) error
	GetAuthenticated(ctx context.Context, handle string) (*domain.AuthenticatedUser, error)
	GetDetails(ctx context.Context, handle string) (*domain.UserDetails, error)
}

type userStore interface {
	Get(ctx context.Context, handle string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, handle string, updates map[string]interface{}) error
}

type likeStore interface {
	ListByHandle(ctx context.Context, handle string) ([]domain.Like, error)
}

type screamStore interface {
	ListByHandle(ctx context.Context, handle string) ([]domain.Scream, error)
}

type notificationStore interface {
	ListRecent(ctx context.Context, recipient string, limit int32) ([]domain.Notification, error)
}

type identityService interface {
	CreateAccount(ctx context.Context, email, password, handle string) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	Token(a *domain.Account) (string, error)
	DeleteAccount(ctx context.Context, email string) error
}

type service struct {
	repo             userStore
	likeRepo         likeStore
	screamRepo       screamStore
	notificationRepo notificationStore
	identity         identityService
	defaultImageURL  string
	callTimeout      time.Duration
}

type ServiceDeps struct {
	UserRepo         userStore
	LikeRepo         likeStore
	ScreamRepo       screamStore
	NotificationRepo notificationStore
	Identity         identityService
	DefaultImageURL  string
	CallTimeout      time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:             deps.UserRepo,
		likeRepo:         deps.LikeRepo,
		screamRepo:       deps.ScreamRepo,
		notificationRepo: deps.NotificationRepo,
		identity:         deps.Identity,
		defaultImageURL:  deps.DefaultImageURL,
		callTimeout:      deps.CallTimeout,
	}
}

// Register creates the identity account and the user record and returns a
// bearer token. The handle pre-check rejects known duplicates without side
// effects; the conditional create catches concurrent registrations.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (string, error) {
	if err := s.handleAvailable(ctx, req.Handle); err != nil {
		return "", err
	}

	callCtx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	account, err := s.identity.CreateAccount(callCtx, req.Email, req.Password, req.Handle)
	cancel()
	if err != nil {
		return "", err
	}

	token, err := s.identity.Token(account)
	if err != nil {
		s.discardAccount(ctx, account)
		return "", err
	}

	u := &domain.User{
		Handle:    req.Handle,
		UserID:    account.UserID,
		Email:     account.Email,
		CreatedAt: domain.Now(),
		ImageURL:  s.defaultImageURL,
	}
	callCtx, cancel = callctx.WithTimeout(ctx, s.callTimeout)
	err = s.repo.Create(callCtx, u)
	cancel()
	if err != nil {
		s.discardAccount(ctx, account)
		return "", err
	}
	return token, nil
}

func (s *service) handleAvailable(ctx context.Context, handle string) error {
	ctx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	_, err := s.repo.Get(ctx, handle)
	switch {
	case err == nil:
		return fmt.Errorf("handle %q: %w", handle, domain.ErrHandleTaken)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

// discardAccount removes an account whose user record could not be written.
func (s *service) discardAccount(ctx context.Context, account *domain.Account) {
	ctx, cancel := callctx.WithTimeout(context.WithoutCancel(ctx), s.callTimeout)
	defer cancel()

	if err := s.identity.DeleteAccount(ctx, account.Email); err != nil {
		slog.Error("orphaned identity account", "email", account.Email, "user_id", account.UserID, "err", err)
	}
}

func (s *service) SignIn(ctx context.Context, req domain.SignInRequest) (string, error) {
	ctx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	account, err := s.identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}
	return s.identity.Token(account)
}

func (s *service) UpdateDetails(ctx context.Context, handle string, req domain.UpdateDetailsRequest) error {
	details := ReduceDetails(req)
	if len(details) == 0 {
		return nil
	}
	updates := make(map[string]interface{}, len(details))
	for k, v := range details {
		updates[k] = v
	}

	ctx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.repo.Update(ctx, handle, updates)
}

func (s *service) GetAuthenticated(ctx context.Context, handle string) (*domain.AuthenticatedUser, error) {
	u, err := s.getUser(ctx, handle)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	likes, err := s.likeRepo.ListByHandle(callCtx, handle)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}

	callCtx, cancel = callctx.WithTimeout(ctx, s.callTimeout)
	notifications, err := s.notificationRepo.ListRecent(callCtx, handle, recentNotifications)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	if likes == nil {
		likes = []domain.Like{}
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return &domain.AuthenticatedUser{Credentials: u, Likes: likes, Notifications: notifications}, nil
}

func (s *service) GetDetails(ctx context.Context, handle string) (*domain.UserDetails, error) {
	u, err := s.getUser(ctx, handle)
	if err != nil {
		return nil, err
	}

	ctx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	screams, err := s.screamRepo.ListByHandle(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("list screams: %w", err)
	}
	if screams == nil {
		screams = []domain.Scream{}
	}
	return &domain.UserDetails{User: u, Screams: screams}, nil
}

func (s *service) getUser(ctx context.Context, handle string) (*domain.User, error) {
	ctx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.repo.Get(ctx, handle)
}
