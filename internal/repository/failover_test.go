package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"restaurant/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
func (m *mockSessionRepo) SetSession(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}
func (m *mockSessionRepo) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockSessionRepo) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func TestFailoverSessionRepository(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	redisErr := errors.New("connection refused")

	t.Run("PrimaryHealthy", func(t *testing.T) {
		primary := new(mockSessionRepo)
		primary.On("GetSession", ctx, "s1").Return(&models.Session{ID: "s1"}, nil)
		fallback := NewMemorySessionRepository(time.Hour)

		repo := NewFailoverSessionRepository(primary, fallback, &logger)
		got, err := repo.GetSession(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", got.ID)
	})

	t.Run("FallsBackOnError", func(t *testing.T) {
		primary := new(mockSessionRepo)
		primary.On("SetSession", ctx, mock.Anything).Return(redisErr)
		primary.On("GetSession", ctx, mock.Anything).Return(nil, redisErr)
		fallback := NewMemorySessionRepository(time.Hour)

		repo := NewFailoverSessionRepository(primary, fallback, &logger)
		sess := &models.Session{ID: "s2", UserID: 7}
		require.NoError(t, repo.SetSession(ctx, sess))

		// The primary is marked down, reads go straight to memory.
		got, err := repo.GetSession(ctx, "s2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(7), got.UserID)
		primary.AssertNumberOfCalls(t, "GetSession", 0)
	})

	t.Run("RateLimitFallsBack", func(t *testing.T) {
		primary := new(mockSessionRepo)
		primary.On("CheckRateLimit", ctx, "ip:1", 2, time.Minute).Return(false, redisErr)
		fallback := NewMemorySessionRepository(time.Hour)

		repo := NewFailoverSessionRepository(primary, fallback, &logger)
		allowed, err := repo.CheckRateLimit(ctx, "ip:1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("PrimaryRetriedAfterCooldown", func(t *testing.T) {
		primary := new(mockSessionRepo)
		primary.On("GetSession", ctx, "s3").Return(&models.Session{ID: "s3"}, nil)
		fallback := NewMemorySessionRepository(time.Hour)

		repo := NewFailoverSessionRepository(primary, fallback, &logger)
		repo.markDown(redisErr)
		repo.lastCheck.Store(time.Now().Add(-2 * time.Minute).UnixNano())

		got, err := repo.GetSession(ctx, "s3")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "s3", got.ID)
		assert.False(t, repo.isDown.Load())
	})
}

// Requests keep flowing while the primary is failing. Exercised with
// many goroutines so the race detector covers the down/retry bookkeeping.
func TestFailoverSessionRepository_ConcurrentDegradation(t *testing.T) {
	logger := zerolog.Nop()
	redisErr := errors.New("connection refused")

	primary := new(mockSessionRepo)
	primary.On("SetSession", mock.Anything, mock.Anything).Return(redisErr)
	primary.On("GetSession", mock.Anything, mock.Anything).Return(nil, redisErr)
	fallback := NewMemorySessionRepository(time.Hour)
	repo := NewFailoverSessionRepository(primary, fallback, &logger)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			sess := &models.Session{ID: id, Cart: models.Cart{}}
			assert.NoError(t, repo.SetSession(context.Background(), sess))

			got, err := repo.GetSession(context.Background(), id)
			assert.NoError(t, err)
			assert.NotNil(t, got)
		}(i)
	}
	wg.Wait()

	assert.True(t, repo.isDown.Load())
}
