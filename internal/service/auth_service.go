package service

import (
	"context"
	"errors"

	"restaurant/internal/database"
	"restaurant/internal/domain"
	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps login timing comparable when the email is unknown.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("login-timing-placeholder"), bcrypt.DefaultCost)

type AuthService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewAuthService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Register hashes the password and creates the user. The plaintext
// password is never stored or logged. A taken email yields
// database.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("User registered")
	_ = s.eventBus.PublishJSON(events.EventUserRegistered, map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

// Login verifies the credentials and returns the user. Unknown email
// and wrong password are indistinguishable to the caller: both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		// Burn a comparison anyway so the miss is not observably faster.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile persists the edited profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User) error {
	return s.repo.UpdateUser(ctx, user)
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
