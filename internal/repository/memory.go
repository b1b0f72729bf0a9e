package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"restaurant/internal/models"
)

// MemorySessionRepository keeps sessions in process memory. Entries are
// stored serialized, so every Get hands the caller its own copy and
// concurrent requests for one cookie never share a live Cart map.
type MemorySessionRepository struct {
	sessions sync.Map // id -> *sessionEntry
	ttl      time.Duration

	mu         sync.Mutex // guards rateLimits read-modify-write
	rateLimits map[string]*rateLimitEntry
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:        ttl,
		rateLimits: make(map[string]*rateLimitEntry),
	}
}

type sessionEntry struct {
	payload   []byte
	expiresAt time.Time
}

func (r *MemorySessionRepository) GetSession(ctx context.Context, id string) (*models.Session, error) {
	val, ok := r.sessions.Load(id)
	if !ok {
		return nil, nil
	}
	entry := val.(*sessionEntry)
	if time.Now().After(entry.expiresAt) {
		r.sessions.Delete(id)
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(entry.payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *MemorySessionRepository) SetSession(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	r.sessions.Store(session.ID, &sessionEntry{
		payload:   data,
		expiresAt: time.Now().Add(r.ttl),
	})
	return nil
}

func (r *MemorySessionRepository) DeleteSession(ctx context.Context, id string) error {
	r.sessions.Delete(id)
	return nil
}

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

func (r *MemorySessionRepository) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	entry, ok := r.rateLimits[key]
	if !ok || now.After(entry.expiresAt) {
		entry = &rateLimitEntry{
			count:     1,
			expiresAt: now.Add(window),
		}
		r.rateLimits[key] = entry
		return 1 <= limit, nil
	}

	entry.count++
	return entry.count <= limit, nil
}
