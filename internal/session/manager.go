package session

import (
	"context"
	"net/http"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager binds the session cookie to the session repository. Every
// request loads (or creates) one session; handlers mutate it and call
// Save before redirecting or rendering.
type Manager struct {
	repo       domain.SessionRepository
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *zerolog.Logger
}

func NewManager(repo domain.SessionRepository, cfg config.SessionConfig, logger *zerolog.Logger) *Manager {
	return &Manager{
		repo:       repo,
		cookieName: cfg.CookieName,
		ttl:        time.Duration(cfg.TTLHours) * time.Hour,
		secure:     cfg.Secure,
		logger:     logger,
	}
}

// Load returns the visitor's session, creating a fresh one when the
// cookie is missing, unknown or expired. A fresh session is not stored
// until Save is called.
func (m *Manager) Load(ctx context.Context, r *http.Request) *models.Session {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil && cookie.Value != "" {
		session, err := m.repo.GetSession(ctx, cookie.Value)
		if err != nil {
			m.logger.Error().Err(err).Msg("Failed to load session")
		}
		if session != nil {
			if session.Cart == nil {
				session.Cart = models.Cart{}
			}
			return session
		}
	}

	return &models.Session{
		ID:        uuid.NewString(),
		Cart:      models.Cart{},
		CreatedAt: time.Now(),
	}
}

// Save persists the session and refreshes the cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	if err := m.repo.SetSession(ctx, session); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// CheckRateLimit delegates to the repository. Handlers key it by what
// they are protecting, for example the login email.
func (m *Manager) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return m.repo.CheckRateLimit(ctx, key, limit, window)
}
