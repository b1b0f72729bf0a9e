package service

import (
	"context"
	"testing"

	"restaurant/internal/database"
	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("HashesPassword", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 7
		}).Return(nil)

		bus := events.NewEventBus()
		var registered int
		bus.Subscribe(events.EventUserRegistered, func(*events.Event) error {
			registered++
			return nil
		})

		svc := NewAuthService(repo, bus, &logger)
		user := &models.User{FirstName: "Anna", Email: "anna@example.com"}
		require.NoError(t, svc.Register(ctx, user, "secret123"))

		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.Equal(t, 1, registered)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(database.ErrDuplicateEmail)

		svc := NewAuthService(repo, events.NewEventBus(), &logger)
		err := svc.Register(ctx, &models.User{Email: "taken@example.com"}, "secret123")
		assert.ErrorIs(t, err, database.ErrDuplicateEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 7, Email: "anna@example.com", PasswordHash: string(hash)}

	repo := new(mockRepo)
	repo.On("GetUserByEmail", ctx, "anna@example.com").Return(stored, nil)
	repo.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, database.ErrNotFound)

	svc := NewAuthService(repo, events.NewEventBus(), &logger)

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Login(ctx, "anna@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	// Both failure modes must be indistinguishable to the caller.
	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, "anna@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(mockRepo)
	repo.On("UpdateUser", ctx, mock.AnythingOfType("*models.User")).Return(database.ErrDuplicateEmail)

	svc := NewAuthService(repo, events.NewEventBus(), &logger)
	err := svc.UpdateProfile(ctx, &models.User{ID: 7, Email: "taken@example.com"})
	assert.ErrorIs(t, err, database.ErrDuplicateEmail)
}
