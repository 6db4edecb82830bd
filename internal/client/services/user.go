package services

import (
	"context"
	"fmt"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/logging"
)

type userAPI interface {
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	BlockUser(ctx context.Context, id string) error
	UnblockUser(ctx context.Context, id string) error
	VerifyEmail(ctx context.Context, token string) (string, error)
}

// sessionUpdater refreshes the signed-in identity cached by the session
// after the backend accepts a profile change.
type sessionUpdater interface {
	UpdateUserProfile(ctx context.Context, patch models.UserPatch) error
}

type UserService interface {
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
	VerifyEmail(ctx context.Context, token string) (string, error)
}

type userService struct {
	api     userAPI
	session sessionUpdater
	log     logging.Logger
}

func NewUserService(api userAPI, session sessionUpdater, log logging.Logger) UserService {
	return &userService{api: api, session: session, log: log.With("service", "users")}
}

func (s *userService) Profile(ctx context.Context) (*models.User, error) {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return user, nil
}

// UpdateProfile pushes the patch to the backend first; only an accepted
// change reaches the session's cached identity.
func (s *userService) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	updated, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	if err := s.session.UpdateUserProfile(ctx, patch); err != nil {
		return nil, fmt.Errorf("refreshing session profile: %w", err)
	}
	s.log.Info(ctx, "profile updated", "email", updated.Email)
	return updated, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *userService) Block(ctx context.Context, id string) error {
	if err := s.api.BlockUser(ctx, id); err != nil {
		return fmt.Errorf("blocking user: %w", err)
	}
	s.log.Info(ctx, "user blocked", "id", id)
	return nil
}

// VerifyEmail redeems the verification token from the registration email.
func (s *userService) VerifyEmail(ctx context.Context, token string) (string, error) {
	msg, err := s.api.VerifyEmail(ctx, token)
	if err != nil {
		return "", fmt.Errorf("verifying email: %w", err)
	}
	s.log.Info(ctx, "email verified")
	return msg, nil
}

func (s *userService) Unblock(ctx context.Context, id string) error {
	if err := s.api.UnblockUser(ctx, id); err != nil {
		return fmt.Errorf("unblocking user: %w", err)
	}
	s.log.Info(ctx, "user unblocked", "id", id)
	return nil
}
