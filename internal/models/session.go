package models

import "time"

// Flash is a one-time user-facing notification shown on the next
// rendered page.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Session is the per-visitor state: identity, cart and pending flashes.
// It is keyed by a random id carried in a cookie and stored in the
// session repository with a TTL.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Cart      Cart      `json:"cart"`
	Flashes   []Flash   `json:"flashes"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsAuthenticated() bool {
	return s.UserID != 0
}

func (s *Session) AddFlash(flashType, message string) {
	s.Flashes = append(s.Flashes, Flash{Type: flashType, Message: message})
}

// PopFlashes returns pending flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// ClearIdentity drops all identity keys, keeping the cart. Idempotent.
func (s *Session) ClearIdentity() {
	s.UserID = 0
	s.Email = ""
	s.FirstName = ""
}
